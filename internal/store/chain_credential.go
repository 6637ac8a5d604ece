// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/books-microservice/models"
)

type chainCredentialStore struct {
	stores []CredentialStore
}

// NewChainCredentialStore returns a [CredentialStore] that asks stores in
// order. The first store that knows the username answers; a store error
// other than [ErrCredentialNotFound] stops the lookup.
func NewChainCredentialStore(stores ...CredentialStore) CredentialStore {
	nonNil := make([]CredentialStore, 0, len(stores))
	for _, s := range stores {
		if s != nil {
			nonNil = append(nonNil, s)
		}
	}

	return &chainCredentialStore{stores: nonNil}
}

func (c *chainCredentialStore) FindCredential(ctx context.Context, username string) (models.Credential, error) {
	for _, s := range c.stores {
		credential, err := s.FindCredential(ctx, username)
		if err == nil {
			return credential, nil
		}
		if !errors.Is(err, ErrCredentialNotFound) {
			return models.Credential{}, err
		}
	}

	return models.Credential{}, ErrCredentialNotFound
}
