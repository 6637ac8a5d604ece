// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/books-microservice/internal/app"
	"github.com/MKhiriev/books-microservice/internal/failure"
	"github.com/MKhiriev/books-microservice/internal/service"
)

type errorKind struct {
	kind    failure.Kind
	message string
}

var errorKindMap = map[error]errorKind{
	ErrEmptyAuthorizationHeader:   {failure.KindUnauthorized, app.MsgAuthenticationRequired},
	ErrInvalidAuthorizationHeader: {failure.KindUnauthorized, app.MsgAuthenticationRequired},
	ErrEmptyToken:                 {failure.KindUnauthorized, app.MsgTokenNotFound},
	ErrNoAuthenticatedUser:        {failure.KindUnauthorized, app.MsgAuthenticationRequired},

	service.ErrInvalidCredentials:    {failure.KindUnauthorized, app.MsgInvalidUsernamePassword},
	service.ErrTokenIsExpired:        {failure.KindUnauthorized, app.MsgTokenIsExpired},
	service.ErrTokenSignatureInvalid: {failure.KindUnauthorized, app.MsgSignatureVerificationFailed},
	service.ErrTokenIsInvalid:        {failure.KindUnauthorized, app.MsgInvalidToken},
}

// failureFromError classifies err. An existing *failure.Error is kept as
// is; known sentinels get their kind and message; everything else is
// internal.
func failureFromError(err error) *failure.Error {
	if err == nil {
		return nil
	}

	var f *failure.Error
	if errors.As(err, &f) {
		return f
	}

	for target, mapped := range errorKindMap {
		if errors.Is(err, target) {
			return &failure.Error{Kind: mapped.kind, Message: mapped.message, Err: err}
		}
	}

	return failure.Internal(err)
}
