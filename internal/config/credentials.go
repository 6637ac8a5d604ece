// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"os"

	"dario.cat/mergo"
)

// CredentialsConfig is the configuration of the credential provisioning
// command.
type CredentialsConfig struct {
	// Storage holds the credential database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// Username and Password form the credential to add.
	Username string `env:"CREDENTIALS_USERNAME"`
	Password string `env:"CREDENTIALS_PASSWORD"`
}

// GetCredentialsConfig loads the provisioning configuration from environment
// variables, overridden by command-line flags.
func GetCredentialsConfig() (*CredentialsConfig, error) {
	return getCredentialsConfig(os.Args[1:])
}

func getCredentialsConfig(args []string) (*CredentialsConfig, error) {
	cfg := new(CredentialsConfig)
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	flagsCfg := new(CredentialsConfig)
	fs := flag.NewFlagSet("books-credentials", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&flagsCfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&flagsCfg.Username, "u", "", "Username")
	fs.StringVar(&flagsCfg.Password, "p", "", "Password")
	fs.StringVar(&flagsCfg.Log.Level, "log-level", "", "Log level")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if err := mergo.Merge(cfg, flagsCfg, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging configs: %w", err)
	}

	switch {
	case cfg.Storage.DB.DSN == "":
		return nil, fmt.Errorf("%w: empty database DSN", ErrInvalidCredentialsConfigs)
	case cfg.Username == "" || cfg.Password == "":
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidCredentialsConfigs)
	}

	return cfg, nil
}
