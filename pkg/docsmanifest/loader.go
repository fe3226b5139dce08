package docsmanifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Loader loads and validates manifests
type Loader struct {
	platforms []Platform
	logger    zerolog.Logger
}

// LoaderOption configures a Loader
type LoaderOption func(*Loader)

// WithPlatforms extends the set of accepted platform keys
func WithPlatforms(platforms ...Platform) LoaderOption {
	return func(l *Loader) {
		for _, p := range platforms {
			if !slices.Contains(l.platforms, p) {
				l.platforms = append(l.platforms, p)
			}
		}
	}
}

// WithLogger sets the logger used for load diagnostics
func WithLogger(logger zerolog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a new manifest loader
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		platforms: KnownPlatforms(),
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Platforms returns the platform keys this loader accepts
func (l *Loader) Platforms() []Platform {
	return slices.Clone(l.platforms)
}

// Load reads and parses a manifest file from the given path
func (l *Loader) Load(path string) (*Manifest, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	l.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("Loading manifest file")
	return l.LoadFromBytes(data, filepath.Ext(path))
}

// LoadEmbedded parses and validates the dataset shipped with the package
func (l *Loader) LoadEmbedded() (*Manifest, error) {
	return l.LoadFromBytes(embeddedManifest, embeddedManifestExt)
}

// LoadFromBytes parses a manifest from raw bytes
func (l *Loader) LoadFromBytes(data []byte, ext string) (*Manifest, error) {
	format, err := ParseFormat(ext)
	if err != nil {
		return nil, err
	}

	var m Manifest
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	}

	normalize(&m)

	if err := NewValidator(l.platforms).Validate(&m); err != nil {
		l.logger.Error().Err(err).Msg("Manifest validation failed")
		return nil, err
	}

	l.logger.Debug().
		Int("platforms", len(m.Sections)).
		Int("entries", m.Len()).
		Msg("Manifest loaded")

	return &m, nil
}

// Load parses and validates the embedded dataset with the built-in platforms
func Load() (*Manifest, error) {
	return NewLoader().LoadEmbedded()
}
