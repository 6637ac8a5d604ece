// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername        = errors.New("username is required")
	ErrUsernameTooLong      = errors.New("username is too long")
	ErrInvalidUsername      = errors.New("username contains forbidden characters")
	ErrInvalidPasswordHash  = errors.New("password hash is not a bcrypt hash")
	ErrPasswordHashTooCheap = errors.New("password hash cost is below the minimum")
)
