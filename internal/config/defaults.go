package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	// Output defaults
	DefaultOutputFormat = "text"

	// Logging defaults
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "pretty"

	// EnvPrefix prefixes environment overrides (DOCSMANIFEST_OUTPUT_FORMAT)
	EnvPrefix = "DOCSMANIFEST"
)

// OutputFormats lists the accepted output.format values
var OutputFormats = []string{"text", "markdown", "json", "yaml"}

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".docsmanifest"
	}
	return filepath.Join(home, ".docsmanifest")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
