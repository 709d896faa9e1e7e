// Package service implements the application's use cases on top of the
// storage and crypto layers: account lifecycle with per-user envelope
// encryption, the session key carrier, and user-scoped credential and
// category management.
package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// AuthService handles account registration, login verification, and the
// session key carrier that moves the derived encryption key from login time
// to later credential operations.
type AuthService interface {
	// Register creates a new account, derives the data-encryption key from
	// the fresh master password and the newly generated persistent salt,
	// and opens the first session.
	Register(ctx context.Context, email, masterPassword string) (models.User, models.Session, error)

	// Login verifies the master password against the stored hash first;
	// only on success is the key derived (from the persisted salt) and a
	// new session created.
	Login(ctx context.Context, email, masterPassword string) (models.User, models.Session, error)

	// Logout destroys the session identified by token together with its
	// bound key material. Unknown tokens are a no-op.
	Logout(ctx context.Context, token string) error

	// Authenticate reconstructs the caller's identity and key from the
	// session carrier pair (token, hex-encoded key). Any failure — unknown
	// or expired token, key mismatch, undecodable key — yields
	// ErrUnauthorized; there is no partial authentication.
	Authenticate(ctx context.Context, token, keyHex string) (models.Principal, error)
}

// CredentialInput carries the user-supplied fields of a credential create or
// update call. Secret is plaintext and must never outlive the call.
type CredentialInput struct {
	Website  string
	Username string
	Secret   string
	Category string
}

// CredentialService owns per-user secret records. Every operation receives
// the authenticated principal explicitly; there is no ambient session state.
type CredentialService interface {
	// Create scores the secret, seals it under the principal's key, and
	// persists a new record. The returned record carries ciphertext only.
	Create(ctx context.Context, principal models.Principal, input CredentialInput) (models.Credential, error)

	// List returns all records owned by the principal.
	List(ctx context.Context, principal models.Principal) ([]models.Credential, error)

	// GetByID returns one record or store.ErrCredentialNotFound.
	GetByID(ctx context.Context, principal models.Principal, id int64) (models.Credential, error)

	// Update re-seals the secret unconditionally, recomputes strength, and
	// rewrites the record.
	Update(ctx context.Context, principal models.Principal, id int64, input CredentialInput) (models.Credential, error)

	// Delete removes the record; absent and foreign records are a no-op.
	Delete(ctx context.Context, principal models.Principal, id int64) error

	// Decrypt opens a sealed blob with the principal's key. The caller has
	// already proven ownership by obtaining the blob through a user-scoped
	// read.
	Decrypt(ctx context.Context, principal models.Principal, sealedBlob string) (string, error)
}

// CategoryService owns per-user category labels.
type CategoryService interface {
	Create(ctx context.Context, principal models.Principal, name, color string) (models.Category, error)
	List(ctx context.Context, principal models.Principal) ([]models.Category, error)
	Delete(ctx context.Context, principal models.Principal, id int64) error
}
