// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/books-microservice/internal/logger"
	"github.com/MKhiriev/books-microservice/internal/utils"
	"github.com/MKhiriev/books-microservice/models"
)

// issueToken signs an access token for the user that passed basic
// authentication. The token is returned in the body and in the token header.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) error {
	log := logger.FromRequest(r)

	username, ok := utils.UsernameFromContext(r.Context())
	if !ok {
		return ErrNoAuthenticatedUser
	}

	token, err := h.services.AuthService.IssueToken(r.Context(), username)
	if err != nil {
		return fmt.Errorf("error issuing token for %q: %w", username, err)
	}

	log.Info().Str("username", username).Str("jti", token.Claims.ID).Msg("token issued")

	w.Header().Set(h.tokenHeader, token.SignedString)
	if _, err = utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString, ExpiresAt: token.ExpiresAt}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing token response")
	}

	return nil
}
