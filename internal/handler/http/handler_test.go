// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/books-microservice/internal/config"
	"github.com/MKhiriev/books-microservice/internal/logger"
	"github.com/MKhiriev/books-microservice/internal/metrics"
	"github.com/MKhiriev/books-microservice/internal/service"
	"github.com/MKhiriev/books-microservice/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "test-secret",
			TokenIssuer:   "books-microservice",
			TokenDuration: time.Hour,
			Version:       "test-version",
		},
		Auth: config.Auth{
			Realm:       "Protected",
			BasicPaths:  []string{"/auth"},
			TokenPaths:  []string{"/"},
			Passthrough: []string{"/auth"},
			TokenHeader: "x-access-token",
		},
		Server: config.Server{
			RequestTimeout: 5 * time.Second,
		},
	}
}

func newTestHandler(services *service.Services, registrars ...RouteRegistrar) *Handler {
	return NewHandler(services, nil, testConfig(), logger.Nop(), registrars...)
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body.Message
}

// ---- NewHandler ----

func TestNewHandler_BuildsRulesFromConfig(t *testing.T) {
	svc := &service.Services{}
	m := metrics.NewMetrics()
	h := NewHandler(svc, m, testConfig(), logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, m, h.metrics)
	assert.Equal(t, []string{"/auth"}, h.basicRule.paths)
	assert.Equal(t, []string{"/"}, h.tokenRule.paths)
	assert.Equal(t, []string{"/auth"}, h.tokenRule.passthrough)
	assert.Empty(t, h.basicRule.passthrough)
	assert.Equal(t, `Basic realm="Protected"`, h.basicChallenge)
	assert.Equal(t, "x-access-token", h.tokenHeader)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := newTestHandler(&service.Services{})
	h2 := newTestHandler(&service.Services{})

	assert.NotSame(t, h1, h2)
}

func TestRecordDecision_NilMetrics(t *testing.T) {
	h := newTestHandler(&service.Services{})

	assert.NotPanics(t, func() {
		h.recordDecision(metrics.RuleBasic, metrics.OutcomeAllowed)
	})
}

func TestRouteRegistrarFunc_Register(t *testing.T) {
	called := false
	var registrar RouteRegistrar = RouteRegistrarFunc(func(r chi.Router) {
		called = true
	})

	registrar.Register(chi.NewRouter())

	assert.True(t, called)
}
