package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func mapLookup(t *testing.T, env map[string]string) envLookup {
	t.Helper()
	if _, ok := env["ENV_FILE"]; !ok {
		env["ENV_FILE"] = filepath.Join(t.TempDir(), "missing.env")
	}
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, mapLookup(t, map[string]string{}))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != defaultRunAddress {
		t.Errorf("expected default run address %q, got %q", defaultRunAddress, cfg.RunAddress)
	}
	if cfg.ServiceName != defaultServiceName {
		t.Errorf("expected default service name %q, got %q", defaultServiceName, cfg.ServiceName)
	}
	if cfg.AppVersion != defaultAppVersion {
		t.Errorf("expected default version %q, got %q", defaultAppVersion, cfg.AppVersion)
	}
	if cfg.Debug {
		t.Errorf("expected debug to be disabled by default")
	}
	if !cfg.SeedData {
		t.Errorf("expected seeding to be enabled by default")
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Errorf("expected default shutdown timeout %v, got %v", defaultShutdownTimeout, cfg.ShutdownTimeout)
	}
	if cfg.StatsInterval != defaultStatsInterval {
		t.Errorf("expected default stats interval %v, got %v", defaultStatsInterval, cfg.StatsInterval)
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	cfg, err := load(nil, mapLookup(t, map[string]string{
		"RUN_ADDRESS":    ":9000",
		"SERVICE_NAME":   "shop",
		"APP_VERSION":    "2.0.0",
		"DEBUG":          "true",
		"SEED_DATA":      "false",
		"STATS_INTERVAL": "1m",
	}))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != ":9000" || cfg.ServiceName != "shop" || cfg.AppVersion != "2.0.0" {
		t.Errorf("unexpected string settings %+v", cfg)
	}
	if !cfg.Debug {
		t.Errorf("expected debug to be enabled")
	}
	if cfg.SeedData {
		t.Errorf("expected seeding to be disabled")
	}
	if cfg.StatsInterval != time.Minute {
		t.Errorf("expected stats interval 1m, got %v", cfg.StatsInterval)
	}
}

func TestLoadWithFlagOverrides(t *testing.T) {
	args := []string{
		"-a", ":9090",
		"--service-name", "flag-shop",
		"--debug",
		"--seed=false",
		"--shutdown-timeout", "20s",
		"--stats-interval", "5s",
	}

	cfg, err := load(args, mapLookup(t, map[string]string{"RUN_ADDRESS": ":7000"}))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != ":9090" {
		t.Errorf("expected run address :9090, got %q", cfg.RunAddress)
	}
	if cfg.ServiceName != "flag-shop" {
		t.Errorf("expected service name override, got %q", cfg.ServiceName)
	}
	if !cfg.Debug || cfg.SeedData {
		t.Errorf("expected bool flags to apply, got debug=%v seed=%v", cfg.Debug, cfg.SeedData)
	}
	if cfg.ShutdownTimeout != 20*time.Second {
		t.Errorf("expected shutdown timeout 20s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.StatsInterval != 5*time.Second {
		t.Errorf("expected stats interval 5s, got %v", cfg.StatsInterval)
	}
}

func TestLoadValidationErrors(t *testing.T) {
	_, err := load([]string{"--shutdown-timeout", "bad"}, mapLookup(t, map[string]string{}))
	if err == nil || !strings.Contains(err.Error(), "invalid shutdown timeout") {
		t.Fatalf("expected shutdown timeout error, got %v", err)
	}

	_, err = load([]string{"--stats-interval", "soon"}, mapLookup(t, map[string]string{}))
	if err == nil || !strings.Contains(err.Error(), "invalid stats interval") {
		t.Fatalf("expected stats interval error, got %v", err)
	}

	_, err = load([]string{"--unknown"}, mapLookup(t, map[string]string{}))
	if err == nil || !strings.Contains(err.Error(), "parse flags") {
		t.Fatalf("expected flag parse error, got %v", err)
	}
}

func TestLoadNormalizesNonPositiveValues(t *testing.T) {
	cfg, err := load(nil, mapLookup(t, map[string]string{
		"SHUTDOWN_TIMEOUT": "0",
		"STATS_INTERVAL":   "-1s",
		"DEBUG":            "not-a-bool",
	}))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Errorf("expected default shutdown timeout %v, got %v", defaultShutdownTimeout, cfg.ShutdownTimeout)
	}
	if cfg.StatsInterval != defaultStatsInterval {
		t.Errorf("expected default stats interval %v, got %v", defaultStatsInterval, cfg.StatsInterval)
	}
	if cfg.Debug {
		t.Errorf("expected unparsable bool to fall back to default")
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "app.env")
	content := "RUN_ADDRESS=:7070\nSERVICE_NAME=from-file\nSEED_DATA=false\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	cfg, err := load(nil, mapLookup(t, map[string]string{
		"ENV_FILE":     envFile,
		"SERVICE_NAME": "from-env",
	}))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != ":7070" {
		t.Errorf("expected run address from file, got %q", cfg.RunAddress)
	}
	if cfg.ServiceName != "from-env" {
		t.Errorf("expected process env to win over file, got %q", cfg.ServiceName)
	}
	if cfg.SeedData {
		t.Errorf("expected seeding disabled by file")
	}
}

func TestLoadRejectsUnreadableEnvFile(t *testing.T) {
	dir := t.TempDir()
	_, err := load(nil, mapLookup(t, map[string]string{"ENV_FILE": dir}))
	if err == nil || !strings.Contains(err.Error(), "read env file") {
		t.Fatalf("expected env file error for directory path, got %v", err)
	}
}
