// Package generator produces random passwords for the dashboard's
// generator widget. Output is drawn from the OS CSPRNG; the generated value
// is returned to the caller and never stored or logged.
package generator

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	// MinLength and MaxLength bound the requested password length.
	MinLength = 4
	MaxLength = 128

	// DefaultLength is used when the caller does not request a length.
	DefaultLength = 16

	charset = "abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"0123456789" +
		"!@#$%^&*()-_=+[]{};:,.<>?"
)

// ErrInvalidLength is returned when the requested length is outside
// [MinLength, MaxLength].
var ErrInvalidLength = errors.New("password length out of range")

// Generate returns a random password of the given length drawn uniformly
// from letters, digits and symbols. Length 0 selects DefaultLength.
func Generate(length int) (string, error) {
	if length == 0 {
		length = DefaultLength
	}
	if length < MinLength || length > MaxLength {
		return "", ErrInvalidLength
	}

	max := big.NewInt(int64(len(charset)))
	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		password[i] = charset[n.Int64()]
	}

	return string(password), nil
}
