// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/books-microservice/internal/metrics"
	"github.com/MKhiriev/books-microservice/internal/mock"
	"github.com/MKhiriev/books-microservice/internal/service"
	"github.com/MKhiriev/books-microservice/internal/store"
	"github.com/MKhiriev/books-microservice/internal/utils"
	"github.com/MKhiriev/books-microservice/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func executeBasicAuth(h *Handler, path string, configure func(r *http.Request), next http.Handler) *httptest.ResponseRecorder {
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, path, nil))
	if configure != nil {
		configure(req)
	}
	rec := httptest.NewRecorder()
	h.basicAuth(next).ServeHTTP(rec, req)
	return rec
}

func failIfCalled(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler must not be called")
	})
}

func TestGetBasicCredentials_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantUser string
		wantPass string
		wantErr  error
	}{
		{name: "valid", header: "Basic cm9vdDp0b29y", wantUser: "root", wantPass: "toor"},
		{name: "empty", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "blank", header: "   ", wantErr: ErrEmptyAuthorizationHeader},
		{name: "bearer scheme", header: "Bearer abc", wantErr: ErrInvalidAuthorizationHeader},
		{name: "bad base64", header: "Basic !!!", wantErr: ErrInvalidAuthorizationHeader},
		{name: "no colon", header: "Basic cm9vdA==", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			user, pass, err := getBasicCredentials(req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, user)
			assert.Equal(t, tt.wantPass, pass)
		})
	}
}

func TestBasicAuth_Success_StoresUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	authSvc := mock.NewMockAuthService(ctrl)
	authSvc.EXPECT().
		Authenticate(gomock.Any(), "root", "toor").
		Return(models.Credential{Username: "root"}, nil)

	m := metrics.NewMetrics()
	h := newTestHandler(&service.Services{AuthService: authSvc})
	h.metrics = m

	var gotUser string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = utils.UsernameFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	rec := executeBasicAuth(h, "/auth", func(r *http.Request) { r.SetBasicAuth("root", "toor") }, next)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "root", gotUser)
	assert.Empty(t, rec.Header().Get("WWW-Authenticate"))
}

func TestBasicAuth_Rejections_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		configure   func(r *http.Request)
		authErr     error
		callsAuth   bool
		wantMessage string
	}{
		{
			name:        "no header",
			wantMessage: "Authentication required",
		},
		{
			name:        "not basic",
			configure:   func(r *http.Request) { r.Header.Set("Authorization", "Bearer token") },
			wantMessage: "Authentication required",
		},
		{
			name:        "wrong password",
			configure:   func(r *http.Request) { r.SetBasicAuth("root", "wrong") },
			authErr:     service.ErrInvalidCredentials,
			callsAuth:   true,
			wantMessage: "Invalid username or password",
		},
		{
			name:        "unknown user",
			configure:   func(r *http.Request) { r.SetBasicAuth("ghost", "toor") },
			authErr:     fmt.Errorf("authenticate: %w", service.ErrInvalidCredentials),
			callsAuth:   true,
			wantMessage: "Invalid username or password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			authSvc := mock.NewMockAuthService(ctrl)
			if tt.callsAuth {
				authSvc.EXPECT().
					Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.Credential{}, tt.authErr)
			}

			h := newTestHandler(&service.Services{AuthService: authSvc})
			rec := executeBasicAuth(h, "/auth", tt.configure, failIfCalled(t))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, `Basic realm="Protected"`, rec.Header().Get("WWW-Authenticate"))
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
		})
	}
}

func TestBasicAuth_StoreFailureIsInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	authSvc := mock.NewMockAuthService(ctrl)
	authSvc.EXPECT().
		Authenticate(gomock.Any(), "root", "toor").
		Return(models.Credential{}, fmt.Errorf("lookup: %w", store.ErrExecutingQuery))

	h := newTestHandler(&service.Services{AuthService: authSvc})
	rec := executeBasicAuth(h, "/auth", func(r *http.Request) { r.SetBasicAuth("root", "toor") }, failIfCalled(t))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("WWW-Authenticate"))
	assert.Equal(t, "Internal Server Error", decodeMessage(t, rec))
}

func TestBasicAuth_SkipsUncoveredPaths(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newTestHandler(&service.Services{AuthService: mock.NewMockAuthService(ctrl)})

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := executeBasicAuth(h, "/api/me", nil, next)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}
