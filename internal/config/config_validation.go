// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// resolveSecret settles the signing secret: an explicit key wins, then the
// key file, then the KEY_SECRET variable.
func (cfg *StructuredConfig) resolveSecret() error {
	if cfg.App.TokenSignKey != "" {
		return nil
	}

	if cfg.App.TokenSignKeyFile != "" {
		data, err := os.ReadFile(cfg.App.TokenSignKeyFile)
		if err != nil {
			return fmt.Errorf("error reading token sign key file: %w", err)
		}
		cfg.App.TokenSignKey = strings.TrimSpace(string(data))
		return nil
	}

	cfg.App.TokenSignKey = cfg.KeySecret
	return nil
}

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is empty", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenLeeway < 0 {
		return fmt.Errorf("%w: token leeway must not be negative", ErrInvalidAppConfigs)
	}

	if cfg.Auth.TokenHeader == "" {
		return fmt.Errorf("%w: token header is empty", ErrInvalidAuthConfigs)
	}
	if len(cfg.Auth.BasicPaths) == 0 && len(cfg.Auth.TokenPaths) == 0 {
		return fmt.Errorf("%w: no protected paths", ErrInvalidAuthConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	return nil
}
