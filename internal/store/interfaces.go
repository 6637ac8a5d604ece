// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/books-microservice/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialStore looks up credentials by username.
//
// Implementations return [ErrCredentialNotFound] (possibly wrapped) when the
// username is unknown.
type CredentialStore interface {
	FindCredential(ctx context.Context, username string) (models.Credential, error)
}

// CredentialRepository is a [CredentialStore] that can also persist new
// credentials.
type CredentialRepository interface {
	CredentialStore
	CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error)
}
