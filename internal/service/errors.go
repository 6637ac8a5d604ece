// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrTokenIsExpired        = errors.New("token is expired")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenIsInvalid        = errors.New("token is invalid")
	ErrTokenCreationFailed   = errors.New("token creation failed")

	ErrSecretIsNotSpecified  = errors.New("token signing secret is not specified")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
