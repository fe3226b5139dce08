package config

import (
	"fmt"
	"slices"
)

// Config represents the application configuration
type Config struct {
	Manifest ManifestConfig `mapstructure:"manifest" yaml:"manifest"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// ManifestConfig selects the manifest source and lookup behaviour
type ManifestConfig struct {
	// Path overrides the embedded dataset with a YAML or JSON file
	Path string `mapstructure:"path" yaml:"path"`
	// DefaultPlatform is used when a requested platform does not exist
	DefaultPlatform string `mapstructure:"default_platform" yaml:"default_platform"`
	// ExtraPlatforms extends the set of accepted platform keys
	ExtraPlatforms []string `mapstructure:"extra_platforms" yaml:"extra_platforms"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration, applying defaults for empty values
func (c *Config) Validate() error {
	if c.Output.Format == "" {
		c.Output.Format = DefaultOutputFormat
	}
	if !slices.Contains(OutputFormats, c.Output.Format) {
		return fmt.Errorf("invalid output.format %q (use one of %v)", c.Output.Format, OutputFormats)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	if c.Logging.Format != "pretty" && c.Logging.Format != "json" {
		return fmt.Errorf("invalid logging.format %q (use pretty or json)", c.Logging.Format)
	}
	return nil
}
