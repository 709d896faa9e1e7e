package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/go-chi/chi/v5"
)

// credentialRequest is the body of credential create and update calls.
// Password is the plaintext secret; it is sealed before it ever reaches
// storage and never appears in any response.
type credentialRequest struct {
	Website  string `json:"website"`
	Username string `json:"username"`
	Password string `json:"password"`
	Category string `json:"category"`
}

func (req credentialRequest) toInput() service.CredentialInput {
	return service.CredentialInput{
		Website:  req.Website,
		Username: req.Username,
		Secret:   req.Password,
		Category: req.Category,
	}
}

func (h *Handler) listCredentials(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	credentials, err := h.services.CredentialService.List(r.Context(), principal)
	if err != nil {
		log.Err(err).Msg("listing credentials failed")
		writeError(w, err)
		return
	}

	if credentials == nil {
		credentials = []models.Credential{}
	}
	utils.WriteJSON(w, credentials, http.StatusOK)
}

func (h *Handler) createCredential(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	var req credentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.CredentialService.Create(r.Context(), principal, req.toInput())
	if err != nil {
		log.Err(err).Msg("credential creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getCredential(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	id, err := credentialID(r)
	if err != nil {
		http.Error(w, "invalid credential id", http.StatusBadRequest)
		return
	}

	credential, err := h.services.CredentialService.GetByID(r.Context(), principal, id)
	if err != nil {
		log.Err(err).Int64("credential_id", id).Msg("credential lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, credential, http.StatusOK)
}

func (h *Handler) updateCredential(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	id, err := credentialID(r)
	if err != nil {
		http.Error(w, "invalid credential id", http.StatusBadRequest)
		return
	}

	var req credentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.CredentialService.Update(r.Context(), principal, id, req.toInput())
	if err != nil {
		log.Err(err).Int64("credential_id", id).Msg("credential update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteCredential(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	id, err := credentialID(r)
	if err != nil {
		http.Error(w, "invalid credential id", http.StatusBadRequest)
		return
	}

	if err := h.services.CredentialService.Delete(r.Context(), principal, id); err != nil {
		log.Err(err).Int64("credential_id", id).Msg("credential deletion failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decryptRequest carries one sealed blob to open with the session's key.
type decryptRequest struct {
	EncryptedPassword string `json:"encrypted_password"`
}

type decryptResponse struct {
	Password string `json:"password"`
}

func (h *Handler) decryptCredential(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	var req decryptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	plaintext, err := h.services.CredentialService.Decrypt(r.Context(), principal, req.EncryptedPassword)
	if err != nil {
		// wrong key and tampered blob look identical here
		log.Err(err).Msg("decryption failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, decryptResponse{Password: plaintext}, http.StatusOK)
}

func credentialID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
