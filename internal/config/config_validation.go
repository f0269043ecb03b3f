// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

// validate checks the merged [StructuredConfig]. Only constraints that hold
// for every binary live here; per-binary requirements are checked by the
// client and server views.
func (cfg *StructuredConfig) validate() error {
	for name, d := range map[string]time.Duration{
		"adapter request timeout":     cfg.Adapter.RequestTimeout,
		"server request timeout":      cfg.Server.RequestTimeout,
		"workers poll interval":       cfg.Workers.PollInterval,
		"workers debounce delay":      cfg.Workers.DebounceDelay,
		"auth access token duration":  cfg.Auth.AccessTokenDuration,
		"auth refresh token duration": cfg.Auth.RefreshTokenDuration,
	} {
		if d < 0 {
			return fmt.Errorf("%w: negative %s", ErrInvalidDuration, name)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.PollInterval <= 0 || cfg.Workers.DebounceDelay <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.SessionSealKey == "" || cfg.App.ReportTimezone == "" {
		return ErrInvalidAppConfigs
	}

	if _, err := time.LoadLocation(cfg.App.ReportTimezone); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAppConfigs, err)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Auth.AccessTokenDuration <= 0 || cfg.Auth.RefreshTokenDuration < cfg.Auth.AccessTokenDuration {
		return ErrInvalidAuthConfigs
	}

	return nil
}
