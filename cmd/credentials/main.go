// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/books-microservice/internal/config"
	"github.com/MKhiriev/books-microservice/internal/logger"
	"github.com/MKhiriev/books-microservice/internal/store"
	"github.com/MKhiriev/books-microservice/internal/utils"
	"github.com/MKhiriev/books-microservice/internal/validators"
	"github.com/MKhiriev/books-microservice/models"
)

// credentials adds one username/password pair to the SQL credential store,
// applying migrations first.
func main() {
	cfg, err := config.GetCredentialsConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger("books-credentials", cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if err = run(context.Background(), *cfg, log); err != nil {
		if errors.Is(err, store.ErrCredentialAlreadyExists) {
			log.Warn().Str("username", cfg.Username).Msg("credential already exists")
			os.Exit(2)
		}
		log.Err(err).Msg("error adding credential")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.CredentialsConfig, log *logger.Logger) error {
	validator := validators.NewCredentialValidator()
	if err := validator.Validate(ctx, models.Credential{Username: cfg.Username}, validators.FieldUsername); err != nil {
		return fmt.Errorf("invalid credential: %w", err)
	}

	db, err := store.NewConnectDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return err
	}

	hash, err := utils.HashPassword(cfg.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	credential := models.Credential{Username: cfg.Username, PasswordHash: hash}
	if err = validator.Validate(ctx, credential); err != nil {
		return fmt.Errorf("invalid credential: %w", err)
	}

	created, err := store.NewCredentialRepository(db, log).CreateCredential(ctx, credential)
	if err != nil {
		return err
	}

	log.Info().Str("username", created.Username).Time("created_at", created.CreatedAt).Msg("credential added")
	return nil
}
