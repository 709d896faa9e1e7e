// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when reading the
// session carrier cookies. Callers can match against them with [errors.Is].
var (
	// ErrNoSessionCookie is returned by the auth middleware when the
	// incoming request does not carry the session token cookie.
	ErrNoSessionCookie = errors.New("missing session cookie")

	// ErrNoKeyCookie is returned when the session token cookie is present
	// but the encryption key cookie is missing. The pair only works
	// together; half a carrier never authenticates.
	ErrNoKeyCookie = errors.New("missing encryption key cookie")
)
