package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because the email is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSessionNotFound is returned when no live session matches the
	// presented token: the token is unknown or the session has expired.
	// The two causes are deliberately indistinguishable.
	ErrSessionNotFound = errors.New("session not found or expired")

	// ErrCredentialNotFound is returned when a credential lookup or update
	// targets a record that does not exist or is owned by a different user.
	// The two causes are deliberately indistinguishable to avoid leaking
	// record existence across accounts.
	ErrCredentialNotFound = errors.New("credential not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when the database rejects or fails a
	// query for reasons other than the domain conditions above.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRows is returned when a result row cannot be scanned into
	// the destination model.
	ErrScanningRows = errors.New("error scanning rows")
)
