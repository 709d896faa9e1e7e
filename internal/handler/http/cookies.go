package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Cookie names of the session carrier pair. Both are HttpOnly: the browser
// stores and replays them, page scripts never see them.
const (
	sessionTokenCookie  = "session_token"
	encryptionKeyCookie = "encryption_key"
)

// setSessionCookies installs the carrier pair for a fresh session. The
// cookies expire together with the server-side session row.
func (h *Handler) setSessionCookies(w http.ResponseWriter, session models.Session) {
	maxAge := int(h.sessionDuration.Seconds())

	http.SetCookie(w, &http.Cookie{
		Name:     sessionTokenCookie,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     encryptionKeyCookie,
		Value:    session.EncryptionKey,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookies expires both carrier cookies on the client.
func (h *Handler) clearSessionCookies(w http.ResponseWriter) {
	for _, name := range []string{sessionTokenCookie, encryptionKeyCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.secureCookies,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
