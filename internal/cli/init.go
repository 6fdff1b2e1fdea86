// Package cli provides common CLI initialization utilities.
// This package consolidates the initialization shared by cmd/plot and
// cmd/tracker.
package cli

import (
	"fmt"
	"io"

	"github.com/joho/godotenv"

	"tracker/internal/config"
	applog "tracker/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetupLogger builds the logger described by cfg, writing to out, and
// installs it as the slog default.
func SetupLogger(cfg *config.Config, out io.Writer) (*applog.Logger, error) {
	level, err := applog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	lc := applog.DefaultConfig()
	lc.Level = level
	lc.Format = cfg.LogFormat
	if out != nil {
		lc.Output = out
	}
	logger := applog.New(lc)
	applog.SetDefault(logger)
	return logger, nil
}

// Bootstrap runs the common startup sequence: optional .env, config,
// logger. Failures are reported on errOut.
func Bootstrap(errOut io.Writer) (*config.Config, *applog.Logger, error) {
	LoadEnvFile()

	cfg, err := LoadAndValidateConfig()
	if err != nil {
		fmt.Fprintln(errOut, err)
		return nil, nil, err
	}

	logger, err := SetupLogger(cfg, errOut)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return nil, nil, err
	}
	return cfg, logger, nil
}
