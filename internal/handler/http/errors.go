// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication layers when reading request
// headers. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the basic layer when the
	// request has no "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not a well-formed Basic credential.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the token header is missing or blank.
	ErrEmptyToken = errors.New("empty access token")

	// ErrNoAuthenticatedUser is returned by handlers that expect the gate
	// to have attached an identity to the request, when it has not.
	ErrNoAuthenticatedUser = errors.New("no authenticated user in request context")
)
