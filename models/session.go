package models

import "time"

// Session is an ephemeral authentication record bound to one user. A session
// is created with a freshly derived encryption key at login or registration,
// never updated in place, and destroyed at logout. Expiry is checked lazily
// on use; expired rows simply stop matching lookups.
type Session struct {
	// SessionID is the internal unique identifier of the session row.
	SessionID int64 `json:"-"`

	// UserID is the owner of the session.
	UserID int64 `json:"-"`

	// Token is the random unguessable session identifier (32 bytes, hex).
	// It is the value the client presents on every authenticated request.
	Token string `json:"-"`

	// EncryptionKey is the hex encoding of the data-encryption key derived
	// from the master password at login time. The credential layer borrows
	// this value for sealing and opening secrets; it is never re-derived
	// during the session's lifetime.
	EncryptionKey string `json:"-"`

	// ExpiresAt is the moment after which the session stops authenticating.
	ExpiresAt time.Time `json:"-"`

	// CreatedAt is the session creation timestamp.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// Principal is the authenticated identity recovered from a session on each
// request: the owning user and the decryption key borrowed from the session
// carrier. It is passed explicitly to every credential operation.
type Principal struct {
	UserID int64

	// Key is the raw 32-byte data-encryption key decoded from the carrier.
	Key []byte
}
