// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"

	"github.com/MKhiriev/books-microservice/internal/failure"
	"github.com/MKhiriev/books-microservice/internal/logger"
	"github.com/MKhiriev/books-microservice/internal/utils"
	"github.com/MKhiriev/books-microservice/models"
)

// writeError is the single exit point of failures. err is classified with
// failureFromError, its extra headers are copied, and the body
// {"message": ...} is written with the status of its kind.
//
// 5xx failures are logged at error level, the rest at info level. The
// underlying cause is logged but never sent.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	f := failureFromError(err)
	if f == nil {
		f = failure.Internal(nil)
	}

	for key, values := range f.Headers {
		w.Header()[key] = slices.Clone(values)
	}

	status := f.Status()
	event := log.Info()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(f.Err).
		Str("kind", f.Kind.String()).
		Int("status", status).
		Str("path", r.URL.Path).
		Msg(f.Message)

	if _, werr := utils.WriteJSON(w, models.ErrorResponse{Message: f.Message}, status); werr != nil {
		log.Err(werr).Msg("error writing error response")
	}
}

// handle adapts a handler that returns an error; a returned error is
// written by writeError. The handler must not have written a response
// when it returns an error.
func (h *Handler) handle(fn func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.writeError(w, r, err)
		}
	}
}

// notFound is registered as the router's NotFound handler.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, failure.NotFound())
}
