// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

// KeyDeriver turns a master password and a persistent per-user salt into the
// symmetric data-encryption key. It knows nothing about users, sessions or
// storage; its single job is deterministic, deliberately slow derivation.
//
// Scheme:
//
//	salt = GenerateEncryptionSalt()        (once, at registration)
//	key  = DeriveKey(password, salt)       (at every login)
type KeyDeriver interface {
	// GenerateEncryptionSalt generates the persistent random salt
	// (16 bytes / 128 bits). The salt is not a secret — it is stored on the
	// server in the clear so the same key can be re-derived at every login.
	GenerateEncryptionSalt() ([]byte, error)

	// DeriveKey derives the 256-bit data-encryption key from the master
	// password and salt. Same inputs always yield the same key. The key
	// exists only in memory and in the session carrier, never in user rows.
	DeriveKey(masterPassword string, salt []byte) []byte

	// GenerateSessionToken generates a random unguessable session token
	// (32 bytes) and returns it hex-encoded.
	GenerateSessionToken() (string, error)
}

// EnvelopeCipher seals and opens individual secret strings with a supplied
// symmetric key. The sealed blob is self-describing: it carries its own salt,
// IV and authentication tag, so Open needs nothing beyond the blob and the key.
type EnvelopeCipher interface {
	// Seal encrypts plaintext under key with a fresh salt and IV and returns
	// the encoded blob: hex(salt):hex(iv):hex(tag):hex(ciphertext).
	Seal(plaintext string, key []byte) (string, error)

	// Open parses a sealed blob and decrypts it with key. Returns
	// ErrMalformedBlob if the blob does not have exactly four hex fields,
	// or ErrAuthenticationFailed if the tag does not verify (tampered data
	// or wrong key — indistinguishable).
	Open(blob string, key []byte) (string, error)
}
