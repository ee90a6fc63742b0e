package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is returned when a setting cannot be used at all
var ErrInvalidConfig = errors.New("invalid configuration")

var (
	validLogLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validLogFormats = []string{"text", "json"}
)

// Validate checks the settings and returns warnings for non-critical issues
// (values that fall back to a default). An unusable log format is an error.
func (c *Config) Validate() ([]string, error) {
	if !contains(validLogFormats, c.LogFormat) {
		return nil, fmt.Errorf("%w: %s must be one of %s, got %q",
			ErrInvalidConfig, EnvLogFormat, strings.Join(validLogFormats, ", "), c.LogFormat)
	}

	var warnings []string

	if !contains(validLogLevels, c.LogLevel) {
		warnings = append(warnings, fmt.Sprintf("%s %q is not recognised, logging at info", EnvLogLevel, c.LogLevel))
	}

	if c.ServiceName == "" {
		warnings = append(warnings, fmt.Sprintf("%s is empty, logs will carry no service name", EnvServiceName))
	}

	return warnings, nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if strings.EqualFold(candidate, v) {
			return true
		}
	}
	return false
}
