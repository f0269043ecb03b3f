// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults for the development server.
const (
	DefaultServerAddress        = "localhost:8080"
	DefaultTokenIssuer          = "meter-api"
	DefaultAccessTokenDuration  = 2 * time.Minute
	DefaultRefreshTokenDuration = 24 * time.Hour
)

// ServerConfig is the development server view of [StructuredConfig].
type ServerConfig struct {
	Server Server
	Auth   Auth
}

// GetServerConfig builds and validates the development server config view
// from the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps the server-relevant fields of cfg and fills unset
// values with defaults.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{Server: cfg.Server, Auth: cfg.Auth}

	if serverCfg.Server.HTTPAddress == "" {
		serverCfg.Server.HTTPAddress = DefaultServerAddress
	}
	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if serverCfg.Auth.TokenIssuer == "" {
		serverCfg.Auth.TokenIssuer = DefaultTokenIssuer
	}
	if serverCfg.Auth.AccessTokenDuration == 0 {
		serverCfg.Auth.AccessTokenDuration = DefaultAccessTokenDuration
	}
	if serverCfg.Auth.RefreshTokenDuration == 0 {
		serverCfg.Auth.RefreshTokenDuration = DefaultRefreshTokenDuration
	}

	return serverCfg
}
