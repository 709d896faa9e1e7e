// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

const (
	// envelopeSaltLen is the length of the random salt embedded in every
	// sealed blob. The salt is carried for format symmetry and future key
	// re-derivation schemes; Open never reads it — the key is supplied by
	// the caller.
	envelopeSaltLen = 64

	// envelopeIVLen is the GCM nonce length. 16 bytes rather than the GCM
	// default of 12 to stay wire-compatible with blobs sealed by earlier
	// versions of the product.
	envelopeIVLen = 16

	// envelopeTagLen is the GCM authentication-tag length.
	envelopeTagLen = 16

	// envelopeFieldCount is the exact number of colon-joined fields in a
	// sealed blob: salt, iv, tag, ciphertext.
	envelopeFieldCount = 4

	envelopeDelimiter = ":"
)

// envelopeCipher is the private implementation of [EnvelopeCipher]. It is
// stateless and safe for concurrent use.
type envelopeCipher struct{}

// NewEnvelopeCipher constructs an [EnvelopeCipher] running AES-256-GCM.
func NewEnvelopeCipher() EnvelopeCipher {
	return &envelopeCipher{}
}

// Seal implements [EnvelopeCipher]. Every call draws a fresh salt and a fresh
// IV from the OS CSPRNG, so sealing the same plaintext under the same key
// twice yields two different blobs. Returns an error if the key is not a
// valid AES-256 key or a random read fails.
func (e *envelopeCipher) Seal(plaintext string, key []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	salt := make([]byte, envelopeSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	iv := make([]byte, envelopeIVLen)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	// gcm.Seal appends the tag to the ciphertext; the blob format carries
	// them as separate fields.
	sealed := gcm.Seal(nil, iv, []byte(plaintext), nil)
	ciphertext, tag := sealed[:len(sealed)-envelopeTagLen], sealed[len(sealed)-envelopeTagLen:]

	return strings.Join([]string{
		hex.EncodeToString(salt),
		hex.EncodeToString(iv),
		hex.EncodeToString(tag),
		hex.EncodeToString(ciphertext),
	}, envelopeDelimiter), nil
}

// Open implements [EnvelopeCipher]. The blob is parsed before any cipher
// work: a field count other than four, or a field that is not valid hex,
// fails with [ErrMalformedBlob]. A tag that does not verify fails with
// [ErrAuthenticationFailed]; the caller cannot tell a wrong key from
// tampered ciphertext.
func (e *envelopeCipher) Open(blob string, key []byte) (string, error) {
	parts := strings.Split(blob, envelopeDelimiter)
	if len(parts) != envelopeFieldCount {
		return "", fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedBlob, envelopeFieldCount, len(parts))
	}

	// parts[0] is the embedded salt. It is decoded only to validate the
	// format; the key was derived by the caller.
	fields := make([][]byte, envelopeFieldCount)
	for i, part := range parts {
		decoded, err := hex.DecodeString(part)
		if err != nil {
			return "", fmt.Errorf("%w: field %d is not hex", ErrMalformedBlob, i)
		}
		fields[i] = decoded
	}
	iv, tag, ciphertext := fields[1], fields[2], fields[3]

	if len(iv) != envelopeIVLen || len(tag) != envelopeTagLen {
		return "", fmt.Errorf("%w: wrong iv or tag length", ErrMalformedBlob)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	plaintext, err := gcm.Open(nil, iv, append(ciphertext, tag...), nil)
	if err != nil {
		return "", ErrAuthenticationFailed
	}

	return string(plaintext), nil
}

// newGCM builds an AES-GCM AEAD with the blob's 16-byte nonce size.
func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, envelopeIVLen)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
