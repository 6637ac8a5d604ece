// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/books-microservice/internal/logger"
	"github.com/MKhiriev/books-microservice/models"
)

// credentialRepository is the SQL-backed implementation of
// [CredentialRepository] over the "credentials" table.
type credentialRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewCredentialRepository constructs a [CredentialRepository] backed by db.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// FindCredential returns the stored credential of username.
//
// Error handling:
//   - no row → [ErrCredentialNotFound].
//   - driver error → wrapped [ErrExecutingQuery].
func (r *credentialRepository) FindCredential(ctx context.Context, username string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindCredentialQuery(r.db.builder(), username)
	if err != nil {
		return models.Credential{}, err
	}

	var found models.Credential
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&found.Username, &found.PasswordHash, &found.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Credential{}, ErrCredentialNotFound
	case err != nil:
		log.Err(err).Str("func", "*credentialRepository.FindCredential").Msg("error querying credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// CreateCredential stores a new credential and returns it with CreatedAt set.
//
// Error handling:
//   - empty username or hash → [ErrEmptyCredential].
//   - unique violation (PostgreSQL 23505, SQLite constraint) → [ErrCredentialAlreadyExists].
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *credentialRepository) CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	if credential.Username == "" || credential.PasswordHash == "" {
		return models.Credential{}, ErrEmptyCredential
	}

	createdAt := r.now().UTC().Truncate(time.Second)
	query, args, err := buildCreateCredentialQuery(r.db.builder(), credential, createdAt)
	if err != nil {
		return models.Credential{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return models.Credential{}, ErrCredentialAlreadyExists
		}
		log.Err(err).Str("func", "*credentialRepository.CreateCredential").Msg("error inserting credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	credential.CreatedAt = createdAt
	return credential, nil
}
