// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	routes := lazyRouteTable(router)

	// order is fixed: outermost first
	router.Use(
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		h.recoverer,
		middleware.StripSlashes,
		h.withTimeout,
		h.basicAuth,
		h.tokenAuth,
		headAsGet(routes),
	)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed(routes))

	// basic-protected
	router.Post("/auth", h.handle(h.issueToken))

	// token-protected
	router.Route("/api", func(r chi.Router) {
		r.Get("/me", h.handle(h.me))
		r.Get("/version", h.handle(h.getServerVersion))
	})

	for _, registrar := range h.registrars {
		registrar.Register(router)
	}

	return router
}
