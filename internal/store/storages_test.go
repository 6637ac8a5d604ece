// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/books-microservice/internal/config"
	"github.com/MKhiriev/books-microservice/internal/logger"
	"github.com/MKhiriev/books-microservice/internal/utils"
	"github.com/MKhiriev/books-microservice/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorages_StaticOnly(t *testing.T) {
	cfg := config.StructuredConfig{Auth: config.Auth{Users: map[string]string{"root": "toor"}}}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	assert.Nil(t, s.CredentialRepository)
	_, err = s.Credentials.FindCredential(context.Background(), "root")
	assert.NoError(t, err)
}

func TestNewStorages_StaticThenSQL(t *testing.T) {
	ctx := context.Background()
	cfg := config.StructuredConfig{
		Auth:    config.Auth{Users: map[string]string{"root": "toor"}},
		Storage: config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "db.sqlite")}},
	}

	s, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer s.Close()
	require.NotNil(t, s.CredentialRepository)

	hash, err := utils.HashPassword("secret")
	require.NoError(t, err)
	_, err = s.CredentialRepository.CreateCredential(ctx, models.Credential{Username: "alice", PasswordHash: hash})
	require.NoError(t, err)

	for _, username := range []string{"root", "alice"} {
		_, err = s.Credentials.FindCredential(ctx, username)
		assert.NoError(t, err, username)
	}

	_, err = s.Credentials.FindCredential(ctx, "bob")
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestNewStorages_Nothing(t *testing.T) {
	s, err := NewStorages(context.Background(), config.StructuredConfig{}, logger.Nop())
	require.NoError(t, err)

	_, err = s.Credentials.FindCredential(context.Background(), "root")
	assert.ErrorIs(t, err, ErrCredentialNotFound)
	assert.NoError(t, s.Close())
}
