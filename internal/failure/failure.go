// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package failure defines the closed set of failure kinds that can leave the
// service, together with the table that maps every kind to an HTTP status.
//
// Every rejection produced by the request pipeline (authentication gate,
// router, handlers, panic recovery) is expressed as an [*Error] so that the
// HTTP layer can translate it into the uniform JSON envelope
// {"message": "..."} without inspecting arbitrary error values.
package failure

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/books-microservice/internal/app"
)

// Kind tags a failure with its category. The set is closed: the HTTP status
// of a failure is derived from its Kind alone.
type Kind int

const (
	// KindInternal is any failure that was not anticipated by the pipeline.
	KindInternal Kind = iota
	// KindUnauthorized is a missing or invalid credential or token.
	KindUnauthorized
	// KindNotFound means no route matched the request path.
	KindNotFound
	// KindMethodNotAllowed means a route matched but not for the request method.
	KindMethodNotAllowed
	// KindBadRequest is a malformed request body or parameter.
	KindBadRequest
)

var kindStatus = map[Kind]int{
	KindInternal:         http.StatusInternalServerError,
	KindUnauthorized:     http.StatusUnauthorized,
	KindNotFound:         http.StatusNotFound,
	KindMethodNotAllowed: http.StatusMethodNotAllowed,
	KindBadRequest:       http.StatusBadRequest,
}

var kindNames = map[Kind]string{
	KindInternal:         "internal",
	KindUnauthorized:     "unauthorized",
	KindNotFound:         "not_found",
	KindMethodNotAllowed: "method_not_allowed",
	KindBadRequest:       "bad_request",
}

// Status returns the HTTP status code for k. Unknown kinds map to 500.
func (k Kind) Status() int {
	if status, ok := kindStatus[k]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// String returns a stable, log-friendly name of k.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindInternal]
}

// Error is a structured failure. It is built once at the point of failure
// and never modified afterwards.
type Error struct {
	// Kind selects the HTTP status.
	Kind Kind

	// Message is the caller-visible text placed into the JSON envelope.
	Message string

	// Headers are extra response headers (e.g. WWW-Authenticate, Allow).
	Headers http.Header

	// Err is the underlying cause. It is logged but never exposed.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause to [errors.Is] and [errors.As].
func (e *Error) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status code of the failure.
func (e *Error) Status() int {
	return e.Kind.Status()
}

// Unauthorized builds a 401 failure. A non-empty challenge is sent back in
// the WWW-Authenticate header.
func Unauthorized(message, challenge string, cause error) *Error {
	e := &Error{Kind: KindUnauthorized, Message: message, Err: cause}
	if challenge != "" {
		e.Headers = http.Header{"Www-Authenticate": []string{challenge}}
	}
	return e
}

// NotFound builds the 404 failure used when no route matches.
func NotFound() *Error {
	return &Error{Kind: KindNotFound, Message: app.MsgPageNotFound}
}

// MethodNotAllowed builds a 405 failure that enumerates the methods the
// matched route supports.
func MethodNotAllowed(methods ...string) *Error {
	return &Error{
		Kind:    KindMethodNotAllowed,
		Message: app.MsgMethodNotAllowed + strings.Join(methods, ", "),
		Headers: http.Header{
			"Allow":                        []string{strings.Join(methods, ", ")},
			"Access-Control-Allow-Methods": []string{strings.Join(methods, ",")},
		},
	}
}

// BadRequest builds a 400 failure.
func BadRequest(message string, cause error) *Error {
	return &Error{Kind: KindBadRequest, Message: message, Err: cause}
}

// Internal wraps an unexpected error into a 500 failure with a generic message.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: app.MsgInternalServerError, Err: cause}
}

// From classifies err. A wrapped [*Error] is returned as is; anything else
// becomes an internal failure. From(nil) returns nil.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	return Internal(err)
}
