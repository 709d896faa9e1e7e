package store

import "github.com/MKhiriev/go-pass-vault/internal/logger"

type Storages struct {
	UserRepository       UserRepository
	SessionRepository    SessionRepository
	CredentialRepository CredentialRepository
	CategoryRepository   CategoryRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		SessionRepository:    NewSessionRepository(db, logger),
		CredentialRepository: NewCredentialRepository(db, logger),
		CategoryRepository:   NewCategoryRepository(db, logger),
	}
}
