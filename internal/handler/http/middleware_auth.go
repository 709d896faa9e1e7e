package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// auth is an HTTP middleware that enforces cookie-based session
// authentication.
//
// It reads the carrier pair (session token cookie plus encryption key
// cookie), validates it via [service.AuthService.Authenticate], and on
// success stores the recovered [models.Principal] in the request context
// under [utils.PrincipalCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when either
// cookie is absent, the token is unknown or expired, or the carried key does
// not match the key bound to the session. The rejection is uniform; a caller
// cannot tell which half of the carrier failed.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenCookie, err := r.Cookie(sessionTokenCookie)
		if err != nil {
			log.Err(ErrNoSessionCookie).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		keyCookie, err := r.Cookie(encryptionKeyCookie)
		if err != nil {
			log.Err(ErrNoKeyCookie).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		principal, err := h.services.AuthService.Authenticate(ctx, tokenCookie.Value, keyCookie.Value)
		if err != nil {
			log.Err(err).Msg("session authentication failed")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the principal in the context so downstream handlers can
		// retrieve the user id and key without re-reading the cookies.
		ctx = utils.WithPrincipal(ctx, principal)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// principalFromRequest retrieves the principal installed by the auth
// middleware. A missing principal means the route was wired outside the auth
// group; the request is rejected with 401.
func principalFromRequest(w http.ResponseWriter, r *http.Request) (models.Principal, bool) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	}
	return principal, ok
}
