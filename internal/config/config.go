// Package config provides structures and utilities for managing the
// application configuration. The greeter exposes a single knob: the logging
// verbosity threshold.
package config

// EmbeddedConfig holds the content of the configuration file, typically passed
// from main.go via go:embed.
type EmbeddedConfig []byte

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the logging level (e.g., "INFO", "DEBUG").
	Level string `yaml:"level"`
}

// SystemConfig holds system-wide settings.
type SystemConfig struct {
	// Logging is the logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// GreeterConfig holds all configuration under the "greeter" top-level key.
type GreeterConfig struct {
	// System contains system-wide configurations.
	System SystemConfig `yaml:"system"`
}

// Config is the root structure for the entire application configuration.
type Config struct {
	// Greeter contains the top-level configuration for the greeter application.
	Greeter GreeterConfig `yaml:"greeter"`
	// EmbeddedConfig holds configuration loaded from an embedded source, not from YAML.
	EmbeddedConfig EmbeddedConfig `yaml:"-"`
}

// NewConfig returns a new instance of Config with default values.
func NewConfig() *Config {
	return &Config{
		Greeter: GreeterConfig{
			System: SystemConfig{
				Logging: LoggingConfig{Level: "INFO"},
			},
		},
	}
}
