package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (without the program
// name). Unknown flags are reported as an error.
//
// Flags:
//
//	-a development server address in format [host]:[port]
//	-api metering API base address used by the console
//	-d local database DSN
//	-c/-config json file path with configs
//	-tz reporting timezone
//	-seal-key session seal key
//	-log log file path
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-access-token-duration access token duration (e.g., "1m")
//	-refresh-token-duration refresh token duration (e.g., "24h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-poll-interval dashboard background poll interval (e.g., "5s")
//	-debounce dashboard period debounce delay (e.g., "500ms")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var apiAddress string
	var databaseDSN string
	var jsonConfigPath string
	var reportTimezone string
	var sealKey string
	var logPath string
	var tokenSignKey string
	var tokenIssuer string
	var accessTokenDuration time.Duration
	var refreshTokenDuration time.Duration
	var requestTimeout time.Duration
	var pollInterval time.Duration
	var debounceDelay time.Duration

	fs := flag.NewFlagSet("meter-console", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&apiAddress, "api", "", "Metering API base address")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&reportTimezone, "tz", "", "Reporting timezone")
	fs.StringVar(&sealKey, "seal-key", "", "Session seal key")
	fs.StringVar(&logPath, "log", "", "Log file path")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&accessTokenDuration, "access-token-duration", 0, "Access token duration (e.g., 1m)")
	fs.DurationVar(&refreshTokenDuration, "refresh-token-duration", 0, "Refresh token duration (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Dashboard poll interval (e.g., 5s)")
	fs.DurationVar(&debounceDelay, "debounce", 0, "Dashboard debounce delay (e.g., 500ms)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			ReportTimezone: reportTimezone,
			SessionSealKey: sealKey,
			LogPath:        logPath,
		},
		Auth: Auth{
			TokenSignKey:         tokenSignKey,
			TokenIssuer:          tokenIssuer,
			AccessTokenDuration:  accessTokenDuration,
			RefreshTokenDuration: refreshTokenDuration,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			PollInterval:  pollInterval,
			DebounceDelay: debounceDelay,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string if neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
