// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"time"

	"github.com/MKhiriev/books-microservice/internal/config"
	"github.com/MKhiriev/books-microservice/internal/logger"
	"github.com/MKhiriev/books-microservice/internal/metrics"
	"github.com/MKhiriev/books-microservice/internal/service"
	"github.com/MKhiriev/books-microservice/internal/utils"
	"github.com/go-chi/chi/v5"
)

// RouteRegistrar mounts business routes behind the authentication gate.
type RouteRegistrar interface {
	Register(r chi.Router)
}

// RouteRegistrarFunc adapts a plain function to [RouteRegistrar].
type RouteRegistrarFunc func(r chi.Router)

// Register calls f(r).
func (f RouteRegistrarFunc) Register(r chi.Router) {
	f(r)
}

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	basicRule      authRule
	tokenRule      authRule
	basicChallenge string
	tokenHeader    string

	requestTimeout time.Duration
	registrars     []RouteRegistrar
	traceIDs       *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler builds a Handler. The gate rules are derived from cfg.Auth once
// and never change afterwards.
func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger, registrars ...RouteRegistrar) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        m,
		basicRule:      newAuthRule(metrics.RuleBasic, cfg.Auth.BasicPaths, nil, cfg.Auth.IgnoreMethods),
		tokenRule:      newAuthRule(metrics.RuleToken, cfg.Auth.TokenPaths, cfg.Auth.Passthrough, cfg.Auth.IgnoreMethods),
		basicChallenge: fmt.Sprintf("Basic realm=%q", cfg.Auth.Realm),
		tokenHeader:    cfg.Auth.TokenHeader,
		requestTimeout: cfg.Server.RequestTimeout,
		registrars:     registrars,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

func (h *Handler) recordDecision(rule, outcome string) {
	if h.metrics == nil {
		return
	}
	h.metrics.RecordAuthDecision(rule, outcome)
}
