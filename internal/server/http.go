// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/books-microservice/internal/logger"
)

const readHeaderTimeout = 10 * time.Second

type httpServer struct {
	label    string
	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(label, address string, handler http.Handler, logger *logger.Logger) *httpServer {
	return &httpServer{
		label: label,
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

func (h *httpServer) name() string {
	return h.label
}

func (h *httpServer) listen() error {
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("%s server listen on %q: %w", h.label, h.server.Addr, err)
	}
	h.listener = listener
	return nil
}

func (h *httpServer) release() {
	if h.listener != nil {
		_ = h.listener.Close()
	}
}

func (h *httpServer) serve() error {
	h.logger.Info().Str("address", h.listener.Addr().String()).Msgf("%s server listening", h.label)

	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server serve: %w", h.label, err)
	}
	return nil
}

func (h *httpServer) shutdown(ctx context.Context) error {
	h.logger.Info().Msgf("%s server shutdown", h.label)

	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s server shutdown: %w", h.label, err)
	}
	return nil
}
