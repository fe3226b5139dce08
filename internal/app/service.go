package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/quantmind-br/docsmanifest-go/internal/config"
	"github.com/quantmind-br/docsmanifest-go/internal/utils"
	"github.com/quantmind-br/docsmanifest-go/pkg/docsmanifest"
)

// ErrEntryNotFound indicates a platform has no entry with the requested id
var ErrEntryNotFound = errors.New("entry not found")

// Service answers manifest queries for the CLI
type Service struct {
	config   *config.Config
	catalog  Catalog
	loader   *docsmanifest.Loader
	logger   *utils.Logger
	fallback docsmanifest.Platform
}

// ServiceOptions contains options for creating a service
type ServiceOptions struct {
	Config *config.Config
	Logger *utils.Logger
	// Catalog overrides the manifest source (used by tests)
	Catalog Catalog
}

// NewService creates a service, loading the manifest selected by the config
func NewService(opts ServiceOptions) (*Service, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	logger = logger.WithComponent("catalog")

	loader := newLoader(cfg, logger)

	catalog := opts.Catalog
	if catalog == nil {
		store, err := openStore(cfg, loader)
		if err != nil {
			return nil, err
		}
		catalog = store
	}

	fallback := docsmanifest.Platform(cfg.Manifest.DefaultPlatform)
	if fallback != "" && !slices.Contains(catalog.ListPlatforms(), fallback) {
		return nil, fmt.Errorf("default platform %q is not in the manifest", fallback)
	}

	return &Service{
		config:   cfg,
		catalog:  catalog,
		loader:   loader,
		logger:   logger,
		fallback: fallback,
	}, nil
}

func newLoader(cfg *config.Config, logger *utils.Logger) *docsmanifest.Loader {
	extra := make([]docsmanifest.Platform, 0, len(cfg.Manifest.ExtraPlatforms))
	for _, p := range cfg.Manifest.ExtraPlatforms {
		extra = append(extra, docsmanifest.Platform(p))
	}
	return docsmanifest.NewLoader(
		docsmanifest.WithPlatforms(extra...),
		docsmanifest.WithLogger(logger.Logger),
	)
}

// openStore picks the manifest source: a file, the embedded dataset with
// extra platforms, or the shared default store
func openStore(cfg *config.Config, loader *docsmanifest.Loader) (*docsmanifest.Store, error) {
	switch {
	case cfg.Manifest.Path != "":
		m, err := loader.Load(cfg.Manifest.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to load manifest: %w", err)
		}
		return docsmanifest.NewStore(m), nil
	case len(cfg.Manifest.ExtraPlatforms) > 0:
		return docsmanifest.NewStoreFromLoader(loader)
	default:
		return docsmanifest.Default()
	}
}

// Platforms returns the platform keys in declaration order
func (s *Service) Platforms() []docsmanifest.Platform {
	return s.catalog.ListPlatforms()
}

// Entries returns the entries of a platform. An unknown platform falls back
// to the configured default platform; the platform actually used is returned.
func (s *Service) Entries(platform docsmanifest.Platform) (docsmanifest.Platform, []docsmanifest.DocEntry, error) {
	entries, err := s.catalog.GetEntries(platform)
	if err == nil {
		return platform, entries, nil
	}
	if !docsmanifest.IsNotFound(err) || s.fallback == "" || platform == s.fallback {
		return "", nil, err
	}

	s.logger.WithPlatform(string(platform)).Warn().
		Str("fallback", string(s.fallback)).
		Msg("Unknown platform, using default")

	entries, err = s.catalog.GetEntries(s.fallback)
	if err != nil {
		return "", nil, err
	}
	return s.fallback, entries, nil
}

// Entry returns a single entry and the platform it was found on, applying the
// same platform fallback as Entries
func (s *Service) Entry(platform docsmanifest.Platform, id string) (docsmanifest.Platform, docsmanifest.DocEntry, error) {
	resolved, _, err := s.Entries(platform)
	if err != nil {
		return "", docsmanifest.DocEntry{}, err
	}

	entry, ok := s.catalog.FindByID(resolved, id)
	if !ok {
		s.logger.WithPlatform(string(resolved)).Debug().Str("id", id).Msg("Entry not found")
		return "", docsmanifest.DocEntry{}, fmt.Errorf("%w: %s/%s", ErrEntryNotFound, resolved, id)
	}
	return resolved, entry, nil
}

// Where returns the platforms documenting id
func (s *Service) Where(id string) []docsmanifest.Platform {
	return s.catalog.PlatformsWithID(id)
}

// Manifest returns the full manifest
func (s *Service) Manifest() *docsmanifest.Manifest {
	return s.catalog.Manifest()
}

// Validate loads and validates the manifest at path, or the embedded
// dataset when path is empty
func (s *Service) Validate(path string) (*docsmanifest.Manifest, error) {
	if path == "" {
		return s.loader.LoadEmbedded()
	}
	return s.loader.Load(path)
}
