package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
// Nothing here changes what the vendor prints; it only shapes logging.
type Config struct {
	LogLevel    string
	LogFormat   string
	LogSource   bool
	Environment string
	ServiceName string
	Version     string
}

// Load loads the configuration from environment variables.
// Warnings describe settings that fell back to a default; they are not fatal.
func Load() (*Config, []string, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
	}
	cfg.LogSource = getEnvAsBool(EnvLogSource, cfg.IsDev())

	warnings, err := cfg.Validate()
	if err != nil {
		return nil, nil, err
	}

	return cfg, warnings, nil
}

// IsDev reports whether the app runs in a development environment
func (c *Config) IsDev() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsBool parses a boolean variable, falling back to the default when unset or malformed
func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
