// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/books-microservice/internal/adapter"
	"github.com/MKhiriev/books-microservice/internal/config"
	"github.com/MKhiriev/books-microservice/internal/logger"
	"github.com/MKhiriev/books-microservice/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// The client logs in with basic credentials and prints the identity and
// server version seen through the issued token.
func main() {
	fmt.Fprint(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger("books-client", cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, *cfg, log); err != nil {
		log.Err(err).Msg("client run error")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.ClientConfig, log *logger.Logger) error {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	if _, err = serverAdapter.Login(ctx, cfg.Adapter.Username, cfg.Adapter.Password); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	me, err := serverAdapter.Me(ctx)
	if err != nil {
		return fmt.Errorf("me: %w", err)
	}

	version, err := serverAdapter.Version(ctx)
	if err != nil {
		return fmt.Errorf("version: %w", err)
	}

	out := json.NewEncoder(os.Stdout)
	out.SetIndent("", "  ")
	return out.Encode(struct {
		Me      models.MeResponse `json:"me"`
		Version string            `json:"server_version"`
	}{Me: me, Version: version})
}
