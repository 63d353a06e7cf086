package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	ServiceName     string
	AppVersion      string
	Debug           bool
	SeedData        bool
	ShutdownTimeout time.Duration
	StatsInterval   time.Duration
}

const (
	defaultRunAddress      = ":8000"
	defaultServiceName     = "shopapi"
	defaultAppVersion      = "1.0.0"
	defaultSeedData        = true
	defaultShutdownTimeout = 10 * time.Second
	defaultStatsInterval   = 15 * time.Second
	defaultEnvFile         = ".env"
)

// Load parses configuration from flags, environment variables and an optional .env file.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	lookup, err := withEnvFile(lookup)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		ServiceName:     getString(lookup, "SERVICE_NAME", defaultServiceName),
		AppVersion:      getString(lookup, "APP_VERSION", defaultAppVersion),
		Debug:           getBool(lookup, "DEBUG", false),
		SeedData:        getBool(lookup, "SEED_DATA", defaultSeedData),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		StatsInterval:   getDuration(lookup, "STATS_INTERVAL", defaultStatsInterval),
	}

	flags := flag.NewFlagSet("shopapi", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var (
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		statsIntervalStr   = cfg.StatsInterval.String()
	)

	flags.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	flags.StringVar(&cfg.ServiceName, "service-name", cfg.ServiceName, "Service name reported by the API")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug logging")
	flags.BoolVar(&cfg.SeedData, "seed", cfg.SeedData, "Fill storage with sample data on start")
	flags.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	flags.StringVar(&statsIntervalStr, "stats-interval", statsIntervalStr, "Interval between status metric snapshots")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.StatsInterval, err = time.ParseDuration(statsIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid stats interval: %w", err)
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.StatsInterval <= 0 {
		cfg.StatsInterval = defaultStatsInterval
	}

	if cfg.RunAddress == "" {
		return nil, fmt.Errorf("run address must be provided")
	}

	return cfg, nil
}

// withEnvFile falls back to values from the ENV_FILE dotenv file for keys
// missing in the process environment. A missing file is not an error.
func withEnvFile(lookup envLookup) (envLookup, error) {
	path := getString(lookup, "ENV_FILE", defaultEnvFile)
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return lookup, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
