package config

import (
	"fmt"
	"time"
)

// Defaults applied to the client view when a source leaves a field empty.
const (
	DefaultRequestTimeout = 15 * time.Second
	DefaultPollInterval   = 5 * time.Second
	DefaultDebounceDelay  = 500 * time.Millisecond
	DefaultReportTimezone = "America/Lima"
	DefaultClientDSN      = "meter-console.db"
)

// ClientApp holds console application settings derived from the shared
// structured config.
type ClientApp struct {
	// ReportTimezone is the IANA timezone used by the date service.
	ReportTimezone string
	// SessionSealKey seals the access token persisted in the local database.
	SessionSealKey string
	// LogPath is the console log file.
	LogPath string
}

// ClientAdapter holds network settings used by the console transport layer.
type ClientAdapter struct {
	// HTTPAddress is the metering API base address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the console.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups console storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains the report orchestrator timer settings.
type ClientWorkers struct {
	// PollInterval defines how often the dashboard is refreshed in the
	// background.
	PollInterval time.Duration
	// DebounceDelay defines how long a period change settles before the
	// dashboard is re-fetched.
	DebounceDelay time.Duration
}

// ClientConfig is the top-level console configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the console config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields of cfg relevant to the console and fills
// unset values with defaults.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			ReportTimezone: cfg.App.ReportTimezone,
			SessionSealKey: cfg.App.SessionSealKey,
			LogPath:        cfg.App.LogPath,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			PollInterval:  cfg.Workers.PollInterval,
			DebounceDelay: cfg.Workers.DebounceDelay,
		},
	}

	if clientCfg.App.ReportTimezone == "" {
		clientCfg.App.ReportTimezone = DefaultReportTimezone
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Storage.DB.DSN == "" {
		clientCfg.Storage.DB.DSN = DefaultClientDSN
	}
	if clientCfg.Workers.PollInterval == 0 {
		clientCfg.Workers.PollInterval = DefaultPollInterval
	}
	if clientCfg.Workers.DebounceDelay == 0 {
		clientCfg.Workers.DebounceDelay = DefaultDebounceDelay
	}

	return clientCfg
}
