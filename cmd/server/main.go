// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/books-microservice/internal/config"
	"github.com/MKhiriev/books-microservice/internal/handler"
	"github.com/MKhiriev/books-microservice/internal/logger"
	"github.com/MKhiriev/books-microservice/internal/metrics"
	"github.com/MKhiriev/books-microservice/internal/server"
	"github.com/MKhiriev/books-microservice/internal/service"
	"github.com/MKhiriev/books-microservice/internal/store"
	"github.com/MKhiriev/books-microservice/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger("books-server", cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if err = run(context.Background(), *cfg, log); err != nil {
		log.Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	m := metrics.NewMetrics()

	handlers, err := handler.NewHandlers(services, m, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, m, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
}
