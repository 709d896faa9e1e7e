package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/strength"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrPasswordTooShort:    http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,
	service.ErrUnauthorized:        http.StatusUnauthorized,

	// an account without a persisted salt is a terminal state requiring
	// manual recovery, not a client mistake
	service.ErrMissingEncryptionSalt: http.StatusInternalServerError,

	// tag failure means wrong key or tampered data; the client sees a
	// generic decryption failure either way
	crypto.ErrAuthenticationFailed: http.StatusBadRequest,
	crypto.ErrMalformedBlob:        http.StatusInternalServerError,

	strength.ErrScoringFailed: http.StatusInternalServerError,

	generator.ErrInvalidLength: http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusUnauthorized,
	store.ErrCredentialNotFound: http.StatusNotFound,
	store.ErrSessionNotFound:    http.StatusUnauthorized,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err onto an HTTP status. Client errors carry the sentinel
// text; server errors get the generic status text so internals never leak.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
