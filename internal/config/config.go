// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// console and the development server. It is populated by merging values from
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds console-level settings such as the reporting timezone and
	// the key used to seal the persisted session token.
	App App `envPrefix:"APP_"`

	// Auth holds token issuance settings used by the development server.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for the console's local session database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the development
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of the metering API the console talks to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background polling and debounce settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level console settings.
type App struct {
	// ReportTimezone is the IANA timezone in which report periods and dates
	// are computed (e.g. "America/Lima").
	// Env: APP_REPORT_TIMEZONE
	ReportTimezone string `env:"REPORT_TIMEZONE"`

	// SessionSealKey is the secret from which the key sealing the persisted
	// access token is derived. Must be kept confidential.
	// Env: APP_SESSION_SEAL_KEY
	SessionSealKey string `env:"SESSION_SEAL_KEY"`

	// LogPath is the file the console writes its logs to. Empty means a
	// "logs" file next to the executable.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Auth holds token issuance settings for the development server.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// AccessTokenDuration is how long an access token stays valid.
	// Kept short in development so the session-expiry flow is easy to hit.
	// Env: AUTH_ACCESS_TOKEN_DURATION
	AccessTokenDuration time.Duration `env:"ACCESS_TOKEN_DURATION"`

	// RefreshTokenDuration is how long a refresh token stays valid.
	// Env: AUTH_REFRESH_TOKEN_DURATION
	RefreshTokenDuration time.Duration `env:"REFRESH_TOKEN_DURATION"`
}

// Storage groups the configuration for the console storage backends.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path or URI (e.g. "file:console.db?_fk=1").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the development server.
type Server struct {
	// HTTPAddress is the TCP address the development server listens on,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds outbound settings for the metering API.
type Adapter struct {
	// HTTPAddress is the base address of the metering API
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for the report orchestrator timers.
type Workers struct {
	// PollInterval is how often the dashboard reports are refreshed in the
	// background.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// DebounceDelay is how long a period change must stay unchanged before
	// the dashboard reports are re-fetched.
	// Env: WORKERS_DEBOUNCE_DELAY
	DebounceDelay time.Duration `env:"DEBOUNCE_DELAY"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		build()
}
