// Package store implements the PostgreSQL persistence layer: user accounts,
// sessions, credential records and categories. Repositories expose
// model-level operations; every credential and category query is filtered by
// the owning user id, so cross-user access is structurally unreachable.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields (UserID, CreatedAt). Returns ErrEmailAlreadyExists when the
	// email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account with the given email or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// SessionRepository persists session records. Sessions are insert-only:
// they are created at login, looked up on every authenticated request, and
// deleted at logout. Expired rows are never matched and are left in place.
type SessionRepository interface {
	// CreateSession inserts a new session row and returns it with
	// server-assigned fields.
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)

	// FindLiveSession returns the session with the given token whose expiry
	// is after now, or ErrSessionNotFound.
	FindLiveSession(ctx context.Context, token string, now time.Time) (models.Session, error)

	// DeleteSession removes the session with the given token. Deleting an
	// unknown token is not an error.
	DeleteSession(ctx context.Context, token string) error
}

// CredentialRepository persists sealed credential records. All operations
// are scoped to the owning user id.
type CredentialRepository interface {
	// Save inserts a new record and returns it with server-assigned fields
	// (CredentialID, CreatedAt, UpdatedAt).
	Save(ctx context.Context, credential models.Credential) (models.Credential, error)

	// GetAll returns every record owned by the user, in storage order.
	GetAll(ctx context.Context, userID int64) ([]models.Credential, error)

	// GetByID returns the record with the given id if owned by the user,
	// or ErrCredentialNotFound.
	GetByID(ctx context.Context, id, userID int64) (models.Credential, error)

	// Update rewrites the mutable fields of the record and refreshes
	// updated_at. Returns ErrCredentialNotFound under the same rule as
	// GetByID.
	Update(ctx context.Context, credential models.Credential) (models.Credential, error)

	// Delete removes the record if owned by the user. Deleting an absent or
	// foreign record is a no-op.
	Delete(ctx context.Context, id, userID int64) error
}

// CategoryRepository persists per-user category labels.
type CategoryRepository interface {
	Save(ctx context.Context, category models.Category) (models.Category, error)
	GetAll(ctx context.Context, userID int64) ([]models.Category, error)

	// Delete removes the category if owned by the user; no-op otherwise.
	Delete(ctx context.Context, id, userID int64) error
}
