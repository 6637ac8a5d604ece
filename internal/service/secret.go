// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
)

// staticSecret is a signing secret fixed for the lifetime of the process.
type staticSecret struct {
	key []byte
}

// NewStaticSecret returns a [SecretProvider] that always yields key.
func NewStaticSecret(key string) (SecretProvider, error) {
	if key == "" {
		return nil, ErrSecretIsNotSpecified
	}

	return &staticSecret{key: []byte(key)}, nil
}

// SigningKey returns a copy of the secret.
func (s *staticSecret) SigningKey(context.Context) ([]byte, error) {
	return slices.Clone(s.key), nil
}
