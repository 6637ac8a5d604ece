// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/books-microservice/internal/config"
	"github.com/MKhiriev/books-microservice/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeBody(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL_TableTest(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "http://localhost:8080", want: "http://localhost:8080"},
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://books.example.com/ ", want: "https://books.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())

	assert.ErrorIs(t, err, ErrEmptyAddress)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "root", user)
		assert.Equal(t, "toor", pass)

		writeBody(w, http.StatusOK, `{"token":"a.b.c","expires_at":"2030-01-01T00:00:00Z"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), "root", "toor")

	require.NoError(t, err)
	assert.Equal(t, "a.b.c", got.Token)
	assert.Equal(t, 2030, got.ExpiresAt.Year())
	assert.Equal(t, "a.b.c", a.Token())
}

func TestLogin_TokenFromHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("x-access-token", "h.e.ader")
		writeBody(w, http.StatusOK, `{}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), "root", "toor")

	require.NoError(t, err)
	assert.Equal(t, "h.e.ader", got.Token)
}

func TestLogin_NoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, `{}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), "root", "toor")

	assert.ErrorIs(t, err, ErrEmptyToken)
	assert.Empty(t, a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("WWW-Authenticate", `Basic realm="Protected"`)
		writeBody(w, http.StatusUnauthorized, `{"message":"Invalid username or password"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), "root", "wrong")

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid username or password")
	assert.Empty(t, a.Token())
}

// ── Me / Version ────────────────────────────────────────────────────────────

func TestMe_SendsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/me", r.URL.Path)
		assert.Equal(t, "a.b.c", r.Header.Get("x-access-token"))
		writeBody(w, http.StatusOK, `{"username":"root","issuer":"books-microservice","token_id":"jti"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" a.b.c ")

	me, err := a.Me(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "root", me.Username)
	assert.Equal(t, "books-microservice", me.Issuer)
	assert.Equal(t, "jti", me.TokenID)
}

func TestMe_WithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("x-access-token"))
		writeBody(w, http.StatusUnauthorized, `{"message":"Token not found"}`)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Me(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		writeBody(w, http.StatusOK, `{"version":"1.2.3"}`)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

// ── error mapping ───────────────────────────────────────────────────────────

func TestMapHTTPError_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "bad request", status: http.StatusBadRequest, body: `{"message":"invalid JSON"}`, wantErr: ErrBadRequest, wantMsg: "invalid JSON"},
		{name: "not found", status: http.StatusNotFound, body: `{"message":"Page not Found"}`, wantErr: ErrNotFound, wantMsg: "Page not Found"},
		{name: "method not allowed", status: http.StatusMethodNotAllowed, body: `{"message":"Method not allowed; Method must be one of: GET"}`, wantErr: ErrMethodNotAllowed, wantMsg: "Method must be one of: GET"},
		{name: "internal", status: http.StatusInternalServerError, body: `{"message":"Internal Server Error"}`, wantErr: ErrInternalServerError, wantMsg: "Internal Server Error"},
		{name: "plain text body", status: http.StatusNotFound, body: "404 page not found\n", wantErr: ErrNotFound, wantMsg: "404 page not found"},
		{name: "other status", status: http.StatusBadGateway, body: "", wantMsg: "http 502: Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeBody(w, tt.status, tt.body)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			a.SetToken("a.b.c")

			_, err := a.Me(context.Background())

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestMe_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, `{}`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL).Me(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
