// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/books-microservice/internal/utils"
	"github.com/MKhiriev/books-microservice/models"
)

// staticCredentialStore is an immutable in-memory credential table.
type staticCredentialStore struct {
	credentials map[string]models.Credential
}

// NewStaticCredentialStore hashes every password of users (username →
// plain password) once and returns a read-only [CredentialStore].
func NewStaticCredentialStore(users map[string]string) (CredentialStore, error) {
	credentials := make(map[string]models.Credential, len(users))
	for username, password := range users {
		if username == "" || password == "" {
			return nil, fmt.Errorf("static user %q: %w", username, ErrEmptyCredential)
		}

		hash, err := utils.HashPassword(password)
		if err != nil {
			return nil, fmt.Errorf("static user %q: %w", username, err)
		}

		credentials[username] = models.Credential{Username: username, PasswordHash: hash}
	}

	return &staticCredentialStore{credentials: credentials}, nil
}

func (s *staticCredentialStore) FindCredential(_ context.Context, username string) (models.Credential, error) {
	credential, ok := s.credentials[username]
	if !ok {
		return models.Credential{}, ErrCredentialNotFound
	}

	return credential, nil
}
