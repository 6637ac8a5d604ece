// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestRecordAuthDecision(t *testing.T) {
	m := NewMetrics()

	m.RecordAuthDecision(RuleBasic, OutcomeAllowed)
	m.RecordAuthDecision(RuleToken, OutcomeRejected)
	m.RecordAuthDecision(RuleToken, OutcomeRejected)

	body := scrape(t, m)
	assert.Contains(t, body, `auth_decisions_total{outcome="allowed",rule="basic"} 1`)
	assert.Contains(t, body, `auth_decisions_total{outcome="rejected",rule="token"} 2`)
}

func TestRecordHTTPRequest(t *testing.T) {
	m := NewMetrics()

	m.RecordHTTPRequest(http.MethodGet, http.StatusUnauthorized, 10*time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `http_requests_total{method="GET",status="401"} 1`)
	assert.Contains(t, body, `http_request_duration_seconds_count{method="GET"} 1`)
}

func TestNewMetrics_IndependentRegistries(t *testing.T) {
	first := NewMetrics()
	second := NewMetrics()

	first.RecordAuthDecision(RuleBasic, OutcomeAllowed)

	assert.NotSame(t, first.Registry(), second.Registry())
	assert.NotContains(t, scrape(t, second), `rule="basic"`)
}
