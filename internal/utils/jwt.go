// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/books-microservice/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidJWTParams is returned by GenerateJWTToken when a required
// parameter is empty or zero.
var ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")

// ErrUnexpectedSigningMethod is returned, wrapped in [jwt.ErrTokenUnverifiable],
// for a token signed with anything but HS256.
var ErrUnexpectedSigningMethod = errors.New("unexpected signing method")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the authenticated username
//   - ID        (jti): tokenID, unique per issued token
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("books-microservice", "root", id, time.Hour, key, time.Now())
func GenerateJWTToken(issuer, subject, tokenID string, tokenDuration time.Duration, signKey []byte, now time.Time) (models.Token, error) {
	if subject == "" || tokenDuration <= 0 || len(signKey) == 0 {
		return models.Token{}, ErrInvalidJWTParams
	}

	expiresAt := now.Add(tokenDuration)
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, ExpiresAt: expiresAt, Claims: claims}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - HS256 as the only accepted algorithm
//   - Signature verification using tokenSignKey
//   - Presence and validity of the expiration (exp) claim, with leeway
//   - Issuer (iss) claim, only when tokenIssuer is non-empty
//   - Presence of the subject (sub) claim
//
// Errors returned by the jwt library are wrapped, so callers can match
// [jwt.ErrTokenExpired], [jwt.ErrTokenSignatureInvalid] and friends with
// [errors.Is]. A foreign algorithm is rejected before any signature check
// and reported as [jwt.ErrTokenUnverifiable], never as a bad signature.
func ValidateAndParseJWTToken(tokenString string, tokenSignKey []byte, tokenIssuer string, leeway time.Duration) (models.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(leeway),
	}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	var claims models.Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedSigningMethod, token.Header["alg"])
		}
		return tokenSignKey, nil
	}, opts...)
	if err != nil {
		return models.Claims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Claims{}, fmt.Errorf("empty subject error: %w", jwt.ErrTokenInvalidClaims)
	}

	return claims, nil
}
