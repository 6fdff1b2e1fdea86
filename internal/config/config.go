package config

import (
	"fmt"
	"os"
	"strings"

	applog "tracker/internal/log"
)

const (
	// CSVFile is the expense log read by plot and written by tracker.
	CSVFile = "tracker.csv"

	// ChartDPI is the output resolution of every chart.
	ChartDPI = 160

	// OutputDir is where charts are written.
	OutputDir = "."
)

type Config struct {
	// Files
	CSVFile   string
	OutputDir string

	// Charts
	DPI int

	// Logging
	LogLevel  string
	LogFormat string
}

// Load returns the configuration. Only logging is read from the
// environment; file names and chart settings are fixed.
func Load() *Config {
	return &Config{
		CSVFile:   CSVFile,
		OutputDir: OutputDir,
		DPI:       ChartDPI,

		LogLevel:  getEnv("TRACKER_LOG_LEVEL", "info"),
		LogFormat: getEnv("TRACKER_LOG_FORMAT", applog.FormatText),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.CSVFile) == "" {
		errors = append(errors, "CSV file name cannot be empty")
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		errors = append(errors, "output directory cannot be empty")
	}
	if c.DPI <= 0 {
		errors = append(errors, fmt.Sprintf("invalid DPI %d: must be positive", c.DPI))
	}

	if _, err := applog.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	validFormats := []string{applog.FormatText, applog.FormatJSON}
	isValidFormat := false
	for _, f := range validFormats {
		if c.LogFormat == f {
			isValidFormat = true
			break
		}
	}
	if !isValidFormat {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of %v", c.LogFormat, validFormats))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
