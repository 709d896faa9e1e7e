package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

type generateRequest struct {
	Length int `json:"length"`
}

type generateResponse struct {
	Password string `json:"password"`
}

// generatePassword serves the dashboard's generator widget. The route is
// public: suggesting a random password needs no account. The generated value
// is returned once and never stored or logged.
func (h *Handler) generatePassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req generateRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Err(err).Msg("Invalid JSON was passed")
			http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}
	}

	password, err := generator.Generate(req.Length)
	if err != nil {
		log.Err(err).Int("length", req.Length).Msg("password generation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, generateResponse{Password: password}, http.StatusOK)
}
