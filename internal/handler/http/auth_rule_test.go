// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath_TableTest(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/", "/"},
		{"//", "/"},
		{"/auth", "/auth"},
		{"/auth/", "/auth"},
		{"//auth//", "/auth"},
		{"auth", "/auth"},
		{"/api//me/", "/api/me"},
		{"/api/me", "/api/me"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizePath(tt.in))
		})
	}
}

func TestHasPathPrefix_TableTest(t *testing.T) {
	tests := []struct {
		path   string
		prefix string
		want   bool
	}{
		{"/auth", "/auth", true},
		{"/auth/refresh", "/auth", true},
		{"/authx", "/auth", false},
		{"/api/me", "/auth", false},
		{"/anything", "/", true},
		{"/", "/", true},
	}

	for _, tt := range tests {
		t.Run(tt.path+" "+tt.prefix, func(t *testing.T) {
			assert.Equal(t, tt.want, hasPathPrefix(tt.path, tt.prefix))
		})
	}
}

func TestAuthRule_Applies(t *testing.T) {
	basic := newAuthRule("basic", []string{"/auth"}, nil, nil)
	token := newAuthRule("token", []string{"/"}, []string{"/auth/"}, []string{" options "})

	tests := []struct {
		name      string
		method    string
		path      string
		wantBasic bool
		wantToken bool
	}{
		{name: "login", method: http.MethodPost, path: "/auth", wantBasic: true, wantToken: false},
		{name: "login trailing slash", method: http.MethodPost, path: "/auth/", wantBasic: true, wantToken: false},
		{name: "login doubled slashes", method: http.MethodGet, path: "//auth", wantBasic: true, wantToken: false},
		{name: "api", method: http.MethodGet, path: "/api/me", wantBasic: false, wantToken: true},
		{name: "root", method: http.MethodGet, path: "/", wantBasic: false, wantToken: true},
		{name: "similar prefix", method: http.MethodGet, path: "/authors", wantBasic: false, wantToken: true},
		{name: "ignored method", method: http.MethodOptions, path: "/api/me", wantBasic: false, wantToken: false},
		{name: "ignored method only on its rule", method: http.MethodOptions, path: "/auth", wantBasic: true, wantToken: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "http://example.com"+tt.path, nil)

			assert.Equal(t, tt.wantBasic, basic.applies(req), "basic")
			assert.Equal(t, tt.wantToken, token.applies(req), "token")
		})
	}
}

func TestNewAuthRule_SkipsBlankPaths(t *testing.T) {
	rule := newAuthRule("token", []string{"", " ", "/api/"}, nil, nil)

	assert.Equal(t, []string{"/api"}, rule.paths)
}
