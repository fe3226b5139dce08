package docsmanifest

import (
	"regexp"
	"slices"
)

// Platform identifies a documentation target (framework variant)
type Platform string

// Built-in platforms, in declaration order
const (
	PlatformJS    Platform = "js"
	PlatformReact Platform = "react"
	PlatformVue   Platform = "vue"
)

// KnownPlatforms returns the built-in platform keys
func KnownPlatforms() []Platform {
	return []Platform{PlatformJS, PlatformReact, PlatformVue}
}

var platformKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// Valid reports whether the key is a well-formed platform identifier
func (p Platform) Valid() bool {
	return platformKeyPattern.MatchString(string(p))
}

func (p Platform) String() string {
	return string(p)
}

// DocEntry is the metadata of a single documentation page
type DocEntry struct {
	ID          string `yaml:"id" json:"id" validate:"notblank"`
	Title       string `yaml:"title" json:"title" validate:"notblank"`
	Description string `yaml:"description" json:"description" validate:"notblank"`
}

// Section holds the ordered entries of one platform
type Section struct {
	Platform Platform
	Entries  []DocEntry
}

// Manifest is the ordered mapping from platform to its entries.
// The zero value is an empty manifest.
type Manifest struct {
	Sections []Section
}

// Platforms returns the platform keys in declaration order
func (m *Manifest) Platforms() []Platform {
	platforms := make([]Platform, len(m.Sections))
	for i, s := range m.Sections {
		platforms[i] = s.Platform
	}
	return platforms
}

// Section returns the section for a platform
func (m *Manifest) Section(platform Platform) (Section, bool) {
	for _, s := range m.Sections {
		if s.Platform == platform {
			return s, true
		}
	}
	return Section{}, false
}

// Len returns the number of entries across all platforms
func (m *Manifest) Len() int {
	n := 0
	for _, s := range m.Sections {
		n += len(s.Entries)
	}
	return n
}

// Clone returns a deep copy of the manifest
func (m *Manifest) Clone() *Manifest {
	out := &Manifest{Sections: make([]Section, len(m.Sections))}
	for i, s := range m.Sections {
		out.Sections[i] = Section{
			Platform: s.Platform,
			Entries:  slices.Clone(s.Entries),
		}
	}
	return out
}

// Equal reports whether both manifests hold the same platforms and entries
// in the same order
func (m *Manifest) Equal(other *Manifest) bool {
	return slices.EqualFunc(m.Sections, other.Sections, func(a, b Section) bool {
		return a.Platform == b.Platform && slices.Equal(a.Entries, b.Entries)
	})
}
