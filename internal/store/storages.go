// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/books-microservice/internal/config"
	"github.com/MKhiriev/books-microservice/internal/logger"
)

// Storages groups the stores used by the service layer.
type Storages struct {
	// Credentials answers every username lookup of the basic layer.
	Credentials CredentialStore

	// CredentialRepository is nil when no database is configured.
	CredentialRepository CredentialRepository

	db *DB
}

// NewStorages builds the credential stores described by cfg:
//
//  1. A static store from cfg.Auth.Users, if any users are configured.
//  2. A SQL repository on cfg.Storage.DB.DSN, if set; migrations are applied
//     on connect.
//
// Both are combined into a chain with the static table asked first.
func NewStorages(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	var stores []CredentialStore
	s := &Storages{}

	if len(cfg.Auth.Users) > 0 {
		static, err := NewStaticCredentialStore(cfg.Auth.Users)
		if err != nil {
			return nil, fmt.Errorf("error building static credential store: %w", err)
		}
		stores = append(stores, static)
	}

	if cfg.Storage.DB.DSN != "" {
		db, err := NewConnectDB(ctx, cfg.Storage.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, err
		}

		s.db = db
		s.CredentialRepository = NewCredentialRepository(db, log)
		stores = append(stores, s.CredentialRepository)
	}

	s.Credentials = NewChainCredentialStore(stores...)
	return s, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
