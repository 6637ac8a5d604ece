// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ErrorResponse is the envelope of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// TokenResponse is returned by POST /auth.
type TokenResponse struct {
	// Token is the signed access token to send back in x-access-token.
	Token string `json:"token"`

	// ExpiresAt is the expiry of Token.
	ExpiresAt time.Time `json:"expires_at"`
}

// MeResponse describes the caller identified by its access token.
type MeResponse struct {
	Username  string    `json:"username"`
	Issuer    string    `json:"issuer,omitempty"`
	TokenID   string    `json:"token_id,omitempty"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// VersionResponse carries the running service version.
type VersionResponse struct {
	Version string `json:"version"`
}
