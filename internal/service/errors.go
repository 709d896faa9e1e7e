package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when required request fields are
	// missing or malformed (empty email, empty secret, etc.).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrPasswordTooShort is returned at registration when the master
	// password is below the minimum length.
	ErrPasswordTooShort = errors.New("master password is too short")

	// ErrWrongPassword is returned when login verification fails. The
	// response is identical for an unknown email and a wrong password.
	ErrWrongPassword = errors.New("wrong email or password")

	// ErrMissingEncryptionSalt is returned when an account has no persisted
	// data-encryption salt. This is a terminal state requiring manual
	// recovery; there is no migration path.
	ErrMissingEncryptionSalt = errors.New("account has no data encryption salt")

	// ErrUnauthorized is returned when no valid session and key pair is
	// presented. The operation never proceeds to touch storage.
	ErrUnauthorized = errors.New("unauthorized")
)
