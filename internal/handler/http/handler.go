package http

import (
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

type Handler struct {
	services *service.Services

	// Cookie parameters come from the app config: the session cookies live
	// exactly as long as the server-side session, and Secure is forced on
	// in production deployments.
	sessionDuration time.Duration
	secureCookies   bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		sessionDuration: cfg.SessionDuration,
		secureCookies:   cfg.SecureCookies,
		logger:          logger,
	}
}
