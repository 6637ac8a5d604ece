// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes type-safe context keys, password hashing, JSON response writing,
// JWT token generation and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/books-microservice/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// ClaimsCtxKey stores the [models.Claims] of a verified access token.
	ClaimsCtxKey = contextKey("claims")

	// UsernameCtxKey stores the username that passed basic authentication.
	UsernameCtxKey = contextKey("username")
)

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims models.Claims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// ClaimsFromContext retrieves the verified token claims.
//
// ok is false when the request never went through token verification
// (e.g. the basic-auth login route).
func ClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	return claims, ok
}

// WithUsername returns a copy of ctx carrying the basic-auth username.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, UsernameCtxKey, username)
}

// UsernameFromContext retrieves the username authenticated by basic auth.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok && username != ""
}
