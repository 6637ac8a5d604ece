// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/books-microservice/internal/failure"
	"github.com/MKhiriev/books-microservice/internal/logger"
)

// ErrPanic wraps the value of a recovered panic.
var ErrPanic = errors.New("panic recovered")

// recoverer turns a panic of any inner handler into an internal failure.
// The stack is logged; the caller gets {"message":"Internal Server Error"}
// unless the handler had already started its response, which is then left
// as it is. http.ErrAbortHandler is re-panicked so that net/http aborts the
// response.
func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := newResponseWriter(w)

		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity, as net/http does
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rvr).
				Bytes("stack", debug.Stack()).
				Bool("response_started", rw.wroteHeader).
				Msg("panic recovered")

			if rw.wroteHeader {
				return
			}
			h.writeError(rw, r, failure.Internal(fmt.Errorf("%w: %v", ErrPanic, rvr)))
		}()

		next.ServeHTTP(rw, r)
	})
}
