// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/books-microservice/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService verifies credentials and manages the access token lifecycle.
type AuthService interface {
	// Authenticate checks username and password against the credential
	// store. Unknown usernames and wrong passwords are indistinguishable:
	// both return ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (models.Credential, error)

	// IssueToken signs a new access token for username.
	IssueToken(ctx context.Context, username string) (models.Token, error)

	// ParseToken verifies a raw token and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Claims, error)
}

// AppInfoService exposes build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SecretProvider supplies the token signing secret.
type SecretProvider interface {
	SigningKey(ctx context.Context) ([]byte, error)
}
