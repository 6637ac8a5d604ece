// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/books-microservice/models"
)

var credentialColumns = []string{"username", "password_hash", "created_at"}

// buildFindCredentialQuery selects one credential by username.
func buildFindCredentialQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	query, args, err := b.
		Select(credentialColumns...).
		From(models.Credential{}.TableName()).
		Where(sq.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCreateCredentialQuery inserts credential; createdAt is set by the caller
// so that both dialects return the same value.
func buildCreateCredentialQuery(b sq.StatementBuilderType, credential models.Credential, createdAt time.Time) (string, []any, error) {
	query, args, err := b.
		Insert(credential.TableName()).
		Columns(credentialColumns...).
		Values(credential.Username, credential.PasswordHash, createdAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
