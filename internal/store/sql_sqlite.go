// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/books-microservice/internal/config"
	"github.com/MKhiriev/books-microservice/internal/logger"
	_ "github.com/mattn/go-sqlite3"
)

// NewConnectSQLite opens the SQLite database file named by cfg.DSN, creating
// it when missing.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening database")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDB, err)
	}

	// sqlite serializes writers anyway
	conn.SetMaxOpenConns(1)

	if err = ping(ctx, conn, "NewConnectSQLite", log); err != nil {
		return nil, err
	}

	return &DB{DB: conn, dialect: DialectSQLite, logger: log}, nil
}
