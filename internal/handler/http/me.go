// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/books-microservice/internal/logger"
	"github.com/MKhiriev/books-microservice/internal/utils"
	"github.com/MKhiriev/books-microservice/models"
)

func (h *Handler) me(w http.ResponseWriter, r *http.Request) error {
	claims, ok := utils.ClaimsFromContext(r.Context())
	if !ok {
		return ErrEmptyToken
	}

	resp := models.MeResponse{
		Username: claims.Username(),
		Issuer:   claims.Issuer,
		TokenID:  claims.ID,
	}
	if claims.IssuedAt != nil {
		resp.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Time
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing me response")
	}
	return nil
}
