package models

import "time"

// Credential is one stored secret record: a site, a login name, and the
// sealed secret. The plaintext secret exists only transiently during create,
// update, and decrypt calls; only the sealed blob is ever persisted.
type Credential struct {
	// CredentialID is the internal unique identifier of the record.
	CredentialID int64 `json:"id"`

	// UserID is the owner of the record. Every repository query filters by
	// this field; it is the authorization boundary.
	UserID int64 `json:"-"`

	// Website identifies the site the secret belongs to.
	Website string `json:"website"`

	// Username is the stored login name for the site. Not encrypted.
	Username string `json:"username"`

	// EncryptedPassword is the sealed blob produced by the envelope cipher:
	// four colon-joined hex fields salt:iv:tag:ciphertext. It is only ever
	// produced and consumed by the crypto package.
	EncryptedPassword string `json:"encrypted_password"`

	// Category is an optional free-text label. Empty means uncategorised.
	Category string `json:"category,omitempty"`

	// Strength is the stored secret-strength score in 1..5, or nil when the
	// estimator reported no score.
	Strength *int `json:"strength,omitempty"`

	// CreatedAt and UpdatedAt are server-generated timestamps.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Credential model.
func (c Credential) TableName() string {
	return "passwords"
}
