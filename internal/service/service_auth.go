// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/books-microservice/internal/config"
	"github.com/MKhiriev/books-microservice/internal/logger"
	"github.com/MKhiriev/books-microservice/internal/store"
	"github.com/MKhiriev/books-microservice/internal/utils"
	"github.com/MKhiriev/books-microservice/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	// credentials answers username lookups of Authenticate.
	credentials store.CredentialStore

	// secret supplies the HMAC key used to sign and verify tokens.
	secret SecretProvider

	// tokenIssuer is the "iss" claim of issued tokens. When non-empty,
	// tokens with another issuer are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// tokenLeeway is the clock skew tolerated on exp and iat.
	tokenLeeway time.Duration

	ids *utils.UUIDGenerator
	now func() time.Time

	// dummyHash is compared against when the username is unknown, so that
	// both rejection paths cost one bcrypt comparison.
	dummyHash func() string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService over credentials and secret
// with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(credentials store.CredentialStore, secret SecretProvider, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		credentials:   credentials,
		secret:        secret,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		tokenLeeway:   cfg.TokenLeeway,
		ids:           utils.NewUUIDGenerator(),
		now:           time.Now,
		dummyHash: sync.OnceValue(func() string {
			hash, _ := utils.HashPassword("books-microservice")
			return hash
		}),
		logger: logger,
	}
}

// Authenticate looks up username and compares password with the stored
// bcrypt hash.
//
// Returns the matching credential or:
//   - ErrInvalidCredentials if either value is empty, the user is unknown,
//     or the password does not match.
//   - A wrapped store error if the lookup itself fails.
func (a *authService) Authenticate(ctx context.Context, username, password string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.Credential{}, ErrInvalidCredentials
	}

	credential, err := a.credentials.FindCredential(ctx, username)
	if errors.Is(err, store.ErrCredentialNotFound) {
		utils.ComparePassword(a.dummyHash(), password)
		log.Debug().Str("username", username).Msg("unknown username")
		return models.Credential{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("credential lookup failed")
		return models.Credential{}, fmt.Errorf("credential lookup failed: %w", err)
	}

	if !utils.ComparePassword(credential.PasswordHash, password) {
		log.Debug().Str("username", username).Msg("wrong password")
		return models.Credential{}, ErrInvalidCredentials
	}

	return credential, nil
}

// IssueToken signs an HS256 token for username carrying iss, sub, jti, iat
// and exp claims.
//
// Returns the token or a wrapped ErrTokenCreationFailed.
func (a *authService) IssueToken(ctx context.Context, username string) (models.Token, error) {
	key, err := a.secret.SigningKey(ctx)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, username, a.ids.Generate(), a.tokenDuration, key, a.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw token string.
//
// Library errors are normalised so that callers need not inspect jwt errors:
//   - ErrTokenIsExpired for an exp in the past.
//   - ErrTokenSignatureInvalid for a signature that does not verify.
//   - ErrTokenIsInvalid for everything else (malformed, wrong algorithm,
//     missing exp or sub, wrong issuer).
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	key, err := a.secret.SigningKey(ctx)
	if err != nil {
		return models.Claims{}, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}

	claims, err := utils.ValidateAndParseJWTToken(tokenString, key, a.tokenIssuer, a.tokenLeeway)
	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.Claims{}, fmt.Errorf("%w: %w", ErrTokenIsExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return models.Claims{}, fmt.Errorf("%w: %w", ErrTokenSignatureInvalid, err)
	default:
		return models.Claims{}, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}
}
