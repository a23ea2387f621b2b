// Package config provides environment and file based configuration for the
// busroute commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig indicates a configuration value that cannot be used.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DefaultAddr is the listen address of busroute-server.
const DefaultAddr = ":8080"

// Config holds the command configuration.
type Config struct {
	// Network is the path of a network description file. Empty selects the
	// built-in school bus network.
	Network string `toml:"network"`

	// Addr is the HTTP listen address of busroute-server.
	Addr string `toml:"addr"`

	// Source is the default source stop, -1 for none.
	Source int `toml:"source"`

	LogFormat string `toml:"log_format"`
	LogLevel  string `toml:"log_level"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Addr:      DefaultAddr,
		Source:    -1,
		LogFormat: "text",
		LogLevel:  "info",
	}
}

// Load loads configuration from environment variables.
// Environment variables are prefixed with BUSROUTE_.
func Load() (*Config, error) {
	config := Default()

	config.Network = getEnv("BUSROUTE_NETWORK", config.Network)
	config.Addr = getEnv("BUSROUTE_ADDR", config.Addr)
	config.Source = getEnvAsInt("BUSROUTE_SOURCE", config.Source)
	config.LogFormat = getEnv("BUSROUTE_LOG_FORMAT", config.LogFormat)
	config.LogLevel = getEnv("BUSROUTE_LOG_LEVEL", config.LogLevel)

	return config, config.Validate()
}

// LoadFile reads a TOML file over the defaults, then applies environment
// overrides on top.
func LoadFile(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	config.Network = getEnv("BUSROUTE_NETWORK", config.Network)
	config.Addr = getEnv("BUSROUTE_ADDR", config.Addr)
	config.Source = getEnvAsInt("BUSROUTE_SOURCE", config.Source)
	config.LogFormat = getEnv("BUSROUTE_LOG_FORMAT", config.LogFormat)
	config.LogLevel = getEnv("BUSROUTE_LOG_LEVEL", config.LogLevel)

	return config, config.Validate()
}

// Validate checks the enumerated values.
func (c *Config) Validate() error {
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.LogFormat)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Addr == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
