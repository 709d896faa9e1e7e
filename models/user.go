package models

import "time"

// User represents an account entity used for authentication and key derivation.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique user identifier used during authentication.
	Email string `json:"email"`

	// MasterPasswordHash is the bcrypt hash of the user's master password.
	// It is used only for login verification, never for key derivation.
	MasterPasswordHash string `json:"-"`

	// DataEncryptionSalt is the persistent hex-encoded random salt generated
	// once at account creation. Together with the master password it
	// deterministically yields the user's data-encryption key. The salt is
	// immutable once set; an account without it cannot store credentials.
	DataEncryptionSalt string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
