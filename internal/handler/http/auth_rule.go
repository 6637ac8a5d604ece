// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"
)

// authRule decides whether one gate layer applies to a request.
type authRule struct {
	name          string
	paths         []string
	passthrough   []string
	ignoreMethods map[string]struct{}
}

func newAuthRule(name string, paths, passthrough, ignoreMethods []string) authRule {
	rule := authRule{
		name:          name,
		paths:         normalizePaths(paths),
		passthrough:   normalizePaths(passthrough),
		ignoreMethods: make(map[string]struct{}, len(ignoreMethods)),
	}
	for _, m := range ignoreMethods {
		rule.ignoreMethods[strings.ToUpper(strings.TrimSpace(m))] = struct{}{}
	}

	return rule
}

// applies reports whether the request path is covered by the rule's paths
// and not by its passthrough, and the method is not ignored.
func (a authRule) applies(r *http.Request) bool {
	if _, ok := a.ignoreMethods[r.Method]; ok {
		return false
	}

	path := normalizePath(r.URL.Path)
	return matchesAny(path, a.paths) && !matchesAny(path, a.passthrough)
}

func matchesAny(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if hasPathPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// hasPathPrefix matches on segment boundaries: "/auth" covers "/auth" and
// "/auth/x" but not "/authx". "/" covers everything.
func hasPathPrefix(path, prefix string) bool {
	if prefix == "/" {
		return true
	}
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func normalizePaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, normalizePath(p))
	}
	return out
}

// normalizePath collapses repeated slashes, guarantees a leading slash and
// drops a trailing one.
func normalizePath(path string) string {
	var b strings.Builder
	b.Grow(len(path) + 1)

	prevSlash := false
	for i, c := range path {
		if i == 0 && c != '/' {
			b.WriteByte('/')
			prevSlash = true
		}
		if c == '/' {
			if prevSlash {
				continue
			}
			prevSlash = true
		} else {
			prevSlash = false
		}
		b.WriteRune(c)
	}

	normalized := b.String()
	if normalized == "" {
		return "/"
	}
	if len(normalized) > 1 {
		normalized = strings.TrimSuffix(normalized, "/")
	}
	return normalized
}
