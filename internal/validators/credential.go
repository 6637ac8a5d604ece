// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/books-microservice/models"
	"golang.org/x/crypto/bcrypt"
)

// Field names accepted by [CredentialValidator].
const (
	// FieldUsername targets the login presented in the Basic Authorization header.
	FieldUsername = "username"

	// FieldPasswordHash targets the stored bcrypt hash.
	FieldPasswordHash = "password_hash"
)

// MaxUsernameLength is the longest username, in characters, that can be stored.
const MaxUsernameLength = 64

// CredentialValidator checks credentials before they are written to a store.
//
// A username must survive the round trip through a Basic Authorization
// header, so it may not contain a colon, whitespace or control characters.
type CredentialValidator struct {
	minCost int
}

// NewCredentialValidator returns a [Validator] for models.Credential that
// rejects bcrypt hashes cheaper than bcrypt.DefaultCost.
func NewCredentialValidator() Validator {
	return &CredentialValidator{minCost: bcrypt.DefaultCost}
}

// Validate accepts models.Credential and *models.Credential. Without fields
// both the username and the password hash are checked.
func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credential:
		return v.validateCredential(ctx, value, fields...)
	case *models.Credential:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredential(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialValidator) validateCredential(_ context.Context, c models.Credential, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPasswordHash}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := validateUsername(c.Username); err != nil {
				return err
			}
		case FieldPasswordHash:
			cost, err := bcrypt.Cost([]byte(c.PasswordHash))
			if err != nil {
				return ErrInvalidPasswordHash
			}
			if cost < v.minCost {
				return ErrPasswordHashTooCheap
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateUsername(username string) error {
	if username == "" {
		return ErrEmptyUsername
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return ErrUsernameTooLong
	}
	if !utf8.ValidString(username) {
		return ErrInvalidUsername
	}

	for _, r := range username {
		if r == ':' || unicode.IsSpace(r) || unicode.IsControl(r) {
			return ErrInvalidUsername
		}
	}

	return nil
}
