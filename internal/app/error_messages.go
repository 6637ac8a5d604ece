// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the caller-visible message strings shared by the
// failure taxonomy and the HTTP handlers.
//
// Every Msg* constant ends up in the "message" field of a JSON error body.
// Clients match on some of them, so the wording is part of the API.
package app

const (
	// MsgAuthenticationRequired is returned when the Basic Authorization
	// header is missing or cannot be parsed.
	MsgAuthenticationRequired = "Authentication required"

	// MsgInvalidUsernamePassword is returned when the supplied
	// username/password pair does not match any known credential.
	MsgInvalidUsernamePassword = "Invalid username or password"

	// MsgTokenNotFound is returned when the access token header is absent or blank.
	MsgTokenNotFound = "Token not found"

	// MsgTokenIsExpired is returned when a token is well formed but its
	// expiry time has passed.
	MsgTokenIsExpired = "Expired token"

	// MsgSignatureVerificationFailed is returned when a token was not signed
	// with the service secret.
	MsgSignatureVerificationFailed = "Signature verification failed"

	// MsgInvalidToken covers every other token defect.
	MsgInvalidToken = "Invalid token"

	// MsgPageNotFound is returned when no route matches the request path.
	MsgPageNotFound = "Page not Found"

	// MsgMethodNotAllowed prefixes the comma separated list of methods a
	// matched route supports.
	MsgMethodNotAllowed = "Method not allowed; Method must be one of: "

	// MsgInternalServerError is returned for every unanticipated failure.
	MsgInternalServerError = "Internal Server Error"
)
