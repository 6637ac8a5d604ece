// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"dario.cat/mergo"
)

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	// Adapter holds the connection settings of the HTTP client.
	Adapter ClientAdapter `envPrefix:"CLIENT_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`
}

// ClientAdapter holds the address of the service and the basic credentials
// used to obtain a token.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the service.
	// Env: CLIENT_SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS" envDefault:"http://localhost:8080"`

	// RequestTimeout bounds every request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`

	// Username and Password are sent to POST /auth.
	// Env: CLIENT_USERNAME, CLIENT_PASSWORD
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD" json:"-"`
}

// GetClientConfig loads the client configuration from environment
// variables, overridden by command-line flags.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	envCfg := new(ClientConfig)
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	flagsCfg, err := parseClientFlags(args)
	if err != nil {
		return nil, err
	}

	if err = mergo.Merge(envCfg, flagsCfg, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging configs: %w", err)
	}

	if envCfg.Adapter.HTTPAddress == "" {
		return nil, fmt.Errorf("%w: empty server address", ErrInvalidClientConfigs)
	}

	return envCfg, nil
}

// parseClientFlags parses the client flags from args.
//
// Flags:
//
//	-s server base URL
//	-u username
//	-p password
//	-t request timeout (e.g., "5s")
//	-log-level log level
func parseClientFlags(args []string) (*ClientConfig, error) {
	cfg := new(ClientConfig)

	fs := flag.NewFlagSet("books-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Adapter.HTTPAddress, "s", "", "Server base URL")
	fs.StringVar(&cfg.Adapter.Username, "u", "", "Username")
	fs.StringVar(&cfg.Adapter.Password, "p", "", "Password")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "t", 0, "Request timeout (e.g., 5s)")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
