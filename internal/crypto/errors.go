// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrMalformedBlob is returned by Open when the sealed blob does not
	// match the expected salt:iv:tag:ciphertext format. It indicates data
	// corruption and is never retried.
	ErrMalformedBlob = errors.New("malformed sealed blob")

	// ErrAuthenticationFailed is returned by Open when the authentication
	// tag does not verify. Wrong key and tampered ciphertext are deliberately
	// indistinguishable to avoid an oracle.
	ErrAuthenticationFailed = errors.New("decryption authentication failed")
)
