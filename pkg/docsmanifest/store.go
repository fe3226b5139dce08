package docsmanifest

import (
	"slices"
	"sync"
)

// Store answers read-only queries over a validated manifest.
// It is immutable after construction and safe for concurrent use.
type Store struct {
	manifest *Manifest
	index    map[Platform]map[string]int
}

// NewStore builds a store over a copy of m. The manifest is expected to be
// validated already; use NewStoreFromLoader or Default for a checked store.
func NewStore(m *Manifest) *Store {
	m = m.Clone()
	index := make(map[Platform]map[string]int, len(m.Sections))
	for _, s := range m.Sections {
		ids := make(map[string]int, len(s.Entries))
		for i, e := range s.Entries {
			if _, ok := ids[e.ID]; !ok {
				ids[e.ID] = i
			}
		}
		index[s.Platform] = ids
	}
	return &Store{manifest: m, index: index}
}

// NewStoreFromLoader loads the embedded dataset with l and wraps it in a Store
func NewStoreFromLoader(l *Loader) (*Store, error) {
	m, err := l.LoadEmbedded()
	if err != nil {
		return nil, err
	}
	return NewStore(m), nil
}

var defaultStore = sync.OnceValues(func() (*Store, error) {
	return NewStoreFromLoader(NewLoader())
})

// Default returns the process-wide store built from the embedded dataset.
// The dataset is loaded and validated once.
func Default() (*Store, error) {
	return defaultStore()
}

// MustDefault is like Default but panics if the embedded dataset is invalid
func MustDefault() *Store {
	s, err := Default()
	if err != nil {
		panic("docsmanifest: " + err.Error())
	}
	return s
}

// ListPlatforms returns all platform keys in declaration order
func (s *Store) ListPlatforms() []Platform {
	return s.manifest.Platforms()
}

// HasPlatform reports whether the manifest declares the platform
func (s *Store) HasPlatform(platform Platform) bool {
	_, ok := s.index[platform]
	return ok
}

// GetEntries returns the entries of a platform in declaration order
func (s *Store) GetEntries(platform Platform) ([]DocEntry, error) {
	section, ok := s.manifest.Section(platform)
	if !ok {
		return nil, NewNotFoundError(platform)
	}
	return slices.Clone(section.Entries), nil
}

// FindByID returns the entry with the given id on a platform. The boolean is
// false when there is no such entry, including for unknown platforms.
func (s *Store) FindByID(platform Platform, id string) (DocEntry, bool) {
	ids, ok := s.index[platform]
	if !ok {
		return DocEntry{}, false
	}
	i, ok := ids[id]
	if !ok {
		return DocEntry{}, false
	}
	section, _ := s.manifest.Section(platform)
	return section.Entries[i], true
}

// PlatformsWithID returns, in declaration order, the platforms documenting id
func (s *Store) PlatformsWithID(id string) []Platform {
	var platforms []Platform
	for _, p := range s.manifest.Platforms() {
		if _, ok := s.index[p][id]; ok {
			platforms = append(platforms, p)
		}
	}
	return platforms
}

// Len returns the number of entries across all platforms
func (s *Store) Len() int {
	return s.manifest.Len()
}

// Manifest returns a deep copy of the underlying manifest
func (s *Store) Manifest() *Manifest {
	return s.manifest.Clone()
}
