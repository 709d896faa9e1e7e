package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/strength"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
)

// Services aggregates every business-logic service the handlers depend on.
type Services struct {
	AuthService       AuthService
	CredentialService CredentialService
	CategoryService   CategoryService
}

// NewServices wires the repositories, the crypto primitives, and the
// derivation pool into the service layer.
func NewServices(storages *store.Storages, keyDeriver crypto.KeyDeriver, cipher crypto.EnvelopeCipher, scorer strength.Scorer, pool *workers.Pool, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(storages, keyDeriver, pool, cfg, logger),
		CredentialService: NewCredentialService(storages.CredentialRepository, cipher, scorer, logger),
		CategoryService:   NewCategoryService(storages.CategoryRepository, logger),
	}
}
