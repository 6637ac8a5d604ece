// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/books-microservice/internal/failure"
	"github.com/MKhiriev/books-microservice/internal/logger"
	"github.com/MKhiriev/books-microservice/internal/metrics"
	"github.com/MKhiriev/books-microservice/internal/utils"
)

// basicAuth enforces HTTP Basic authentication on the paths of the basic
// rule.
//
// Credentials are verified by [service.AuthService.Authenticate]. On success
// the username is stored in the request context ([utils.WithUsername]).
//
// The request is rejected with 401 and a WWW-Authenticate challenge when:
//   - the "Authorization" header is absent ([ErrEmptyAuthorizationHeader]);
//   - it is not a Basic credential ([ErrInvalidAuthorizationHeader]);
//   - the username or password is wrong.
//
// A failing credential store yields 500.
func (h *Handler) basicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.basicRule.applies(r) {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		username, password, err := getBasicCredentials(r)
		if err == nil {
			_, err = h.services.AuthService.Authenticate(r.Context(), username, password)
		}

		if err != nil {
			f := failureFromError(err)
			if f.Kind != failure.KindUnauthorized {
				h.recordDecision(metrics.RuleBasic, metrics.OutcomeError)
				h.writeError(w, r, f)
				return
			}

			log.Warn().Err(err).Str("username", username).Msg("basic authentication rejected")
			h.recordDecision(metrics.RuleBasic, metrics.OutcomeRejected)
			h.writeError(w, r, failure.Unauthorized(f.Message, h.basicChallenge, err))
			return
		}

		log.Debug().Str("username", username).Msg("basic authentication passed")
		h.recordDecision(metrics.RuleBasic, metrics.OutcomeAllowed)

		next.ServeHTTP(w, r.WithContext(utils.WithUsername(r.Context(), username)))
	})
}

// getBasicCredentials reads "Authorization: Basic base64(user:pass)".
func getBasicCredentials(r *http.Request) (string, string, error) {
	if strings.TrimSpace(r.Header.Get("Authorization")) == "" {
		return "", "", ErrEmptyAuthorizationHeader
	}

	username, password, ok := r.BasicAuth()
	if !ok {
		return "", "", ErrInvalidAuthorizationHeader
	}

	return username, password, nil
}
