// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/books-microservice/internal/failure"
	"github.com/go-chi/chi/v5"
)

// standardMethods are checked, in this order, when listing the methods of a route.
var standardMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
	http.MethodConnect,
	http.MethodTrace,
}

// routeTable answers "which methods does this path serve" for a router.
//
// chi.Mux.Match cannot be asked directly: the root of a group mounted with
// Route or Mount ("/books") is a catch-all stub that matches every method
// without descending into the group. The table is a flat copy of the router
// built with chi.Walk, one route per method and full pattern, so every
// pattern resolves to the methods registered for it.
type routeTable struct {
	flat *chi.Mux
}

func newRouteTable(router chi.Routes) *routeTable {
	noop := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	flat := chi.NewRouter()
	_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		flat.Method(method, trimTrailingSlash(route), noop)
		return nil
	})

	return &routeTable{flat: flat}
}

// lazyRouteTable defers the walk to the first lookup, after every route has
// been registered.
func lazyRouteTable(router chi.Routes) func() *routeTable {
	return sync.OnceValue(func() *routeTable {
		return newRouteTable(router)
	})
}

// serves reports whether method is registered on path.
func (t *routeTable) serves(method, path string) bool {
	return t.flat.Match(chi.NewRouteContext(), method, path)
}

// allowed lists the methods registered on path, in standardMethods order.
func (t *routeTable) allowed(path string) []string {
	allowed := make([]string, 0, len(standardMethods))
	for _, method := range standardMethods {
		if t.serves(method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

// methodNotAllowed returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi reaches this handler when the request path matches a route but not
// its method. The request fails with [failure.MethodNotAllowed]: status 405,
// an Allow header and a message enumerating the methods of the route.
//
// Usage:
//
//	router := chi.NewRouter()
//	routes := lazyRouteTable(router)
//	// ... register routes ...
//	router.MethodNotAllowed(h.methodNotAllowed(routes))
func (h *Handler) methodNotAllowed(routes func() *routeTable) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, failure.MethodNotAllowed(routes().allowed(routePath(r))...))
	}
}

// headAsGet answers HEAD with the GET handler of a route that registers no
// HEAD handler of its own, the way chi's middleware.GetHead does, but
// resolved through routes so that the roots of mounted groups work too.
// net/http drops the body of a HEAD response.
func headAsGet(routes func() *routeTable) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodHead {
				rctx := chi.RouteContext(r.Context())
				path := routePath(r)
				table := routes()
				if rctx != nil && !table.serves(http.MethodHead, path) && table.serves(http.MethodGet, path) {
					rctx.RouteMethod = http.MethodGet
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// routePath is the path the router matched: the request path without its
// trailing slash.
func routePath(r *http.Request) string {
	path := r.URL.RawPath
	if path == "" {
		path = r.URL.Path
	}
	return trimTrailingSlash(path)
}

func trimTrailingSlash(path string) string {
	if len(path) > 1 {
		return strings.TrimSuffix(path, "/")
	}
	return path
}
