// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/books-microservice/internal/config"
	"github.com/MKhiriev/books-microservice/internal/handler"
	"github.com/MKhiriev/books-microservice/internal/logger"
	"github.com/MKhiriev/books-microservice/internal/metrics"
	"golang.org/x/sync/errgroup"
)

type server struct {
	transports      []transport
	shutdownTimeout time.Duration

	logger *logger.Logger
}

const defaultShutdownTimeout = 10 * time.Second

// NewServer creates a transport per configured address: the HTTP API, the
// metrics endpoint (when m is set) and the gRPC health server.
func NewServer(handlers *handler.Handlers, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	if handlers == nil {
		return nil, errNilHandlers
	}

	servers := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
	if servers.shutdownTimeout <= 0 {
		servers.shutdownTimeout = defaultShutdownTimeout
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.transports = append(servers.transports, newHTTPServer("HTTP", cfg.HTTPAddress, handlers.HTTP.Init(), logger))
	}
	if cfg.MetricsAddress != "" && m != nil {
		servers.transports = append(servers.transports, newHTTPServer("metrics", cfg.MetricsAddress, m.Handler(), logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.transports = append(servers.transports, newGRPCServer(handlers.GRPC, cfg.GRPCAddress, logger))
	}

	if len(servers.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer(ctx context.Context) error {
	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
		return err
	}
	return nil
}

func (s *server) run(parent context.Context) error {
	ctx, stop := signal.NotifyContext(
		parent,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// bind every address before serving anything
	for i, t := range s.transports {
		if err := t.listen(); err != nil {
			for _, bound := range s.transports[:i] {
				bound.release()
			}
			return err
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)

	// launch all created servers
	for _, t := range s.transports {
		s.logger.Info().Msgf("Launching %s server", t.name())
		group.Go(t.serve)
	}

	// listen for stop signals or the first failing transport
	group.Go(func() error {
		<-groupCtx.Done()
		s.shutdown(s.transports)
		return nil
	})

	if err := group.Wait(); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

// shutdown stops the transports concurrently within shutdownTimeout.
func (s *server) shutdown(transports []transport) {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	var group errgroup.Group
	for _, t := range transports {
		t := t
		group.Go(func() error {
			return t.shutdown(ctx)
		})
	}

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Err(err).Msg("error shutting down servers")
	}
}
