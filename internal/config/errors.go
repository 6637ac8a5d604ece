// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid token settings
	// (for example, a missing signing secret).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAuthConfigs indicates an unusable gate configuration.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidServerConfigs indicates that no transport address is set.
	ErrInvalidServerConfigs = errors.New("invalid server configuration: no address")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidClientConfigs indicates that the client has no server address.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
	// ErrInvalidCredentialsConfigs indicates that the credential to add is
	// incomplete or there is no database to add it to.
	ErrInvalidCredentialsConfigs = errors.New("invalid credentials configuration")
)
