// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the books-microservice HTTP
// API.
//
// The primary abstraction is [ServerAdapter]. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on go-resty.
//
// Error envelopes ({"message": "..."}) are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/books-microservice/models"
)

// ServerAdapter defines communication with the books-microservice server.
// Implementations are responsible for serialisation, token header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the access token that will be attached to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the access token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login exchanges basic credentials for an access token at POST /auth.
	// On success the token is stored via SetToken.
	Login(ctx context.Context, username, password string) (models.TokenResponse, error)

	// Me returns the identity behind the stored token (GET /api/me).
	Me(ctx context.Context) (models.MeResponse, error)

	// Version returns the server version (GET /api/version).
	Version(ctx context.Context) (string, error)
}
