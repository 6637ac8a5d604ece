// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/books-microservice/internal/logger"
	"github.com/MKhiriev/books-microservice/internal/metrics"
	"github.com/MKhiriev/books-microservice/internal/utils"
)

const bearerPrefix = "bearer "

// tokenAuth enforces access token authentication on the paths of the token
// rule.
//
// It reads the token from the configured header (x-access-token by
// default), validates it via [service.AuthService.ParseToken], and on
// success stores the decoded claims in the request context under
// [utils.ClaimsCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - the header is absent or blank ([ErrEmptyToken]);
//   - the token has expired ([service.ErrTokenIsExpired]);
//   - the signature does not verify ([service.ErrTokenSignatureInvalid]);
//   - the token is otherwise invalid ([service.ErrTokenIsInvalid]).
func (h *Handler) tokenAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.tokenRule.applies(r) {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		ctx := r.Context()

		tokenString, err := getTokenFromHeader(r.Header.Get(h.tokenHeader))
		if err != nil {
			log.Warn().Err(err).Str("path", r.URL.Path).Msg("token not found")
			h.recordDecision(metrics.RuleToken, metrics.OutcomeRejected)
			h.writeError(w, r, err)
			return
		}

		claims, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Str("path", r.URL.Path).Msg("token rejected")
			h.recordDecision(metrics.RuleToken, metrics.OutcomeRejected)
			h.writeError(w, r, err)
			return
		}

		log.Debug().Str("username", claims.Username()).Str("jti", claims.ID).Msg("token accepted")
		h.recordDecision(metrics.RuleToken, metrics.OutcomeAllowed)

		next.ServeHTTP(w, r.WithContext(utils.WithClaims(ctx, claims)))
	})
}

// getTokenFromHeader returns the raw token of a header value. The value is
// the token itself; a leading "Bearer " is tolerated.
func getTokenFromHeader(value string) (string, error) {
	token := strings.TrimLeft(value, " \t")
	if len(token) >= len(bearerPrefix) && strings.EqualFold(token[:len(bearerPrefix)], bearerPrefix) {
		token = token[len(bearerPrefix):]
	}
	token = strings.TrimSpace(token)

	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
