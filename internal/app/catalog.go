package app

import "github.com/quantmind-br/docsmanifest-go/pkg/docsmanifest"

//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks

// Catalog is the read-only view of the docs manifest used by the service.
// *docsmanifest.Store satisfies it.
type Catalog interface {
	// ListPlatforms returns platform keys in declaration order
	ListPlatforms() []docsmanifest.Platform
	// GetEntries returns a platform's entries or a *docsmanifest.NotFoundError
	GetEntries(platform docsmanifest.Platform) ([]docsmanifest.DocEntry, error)
	// FindByID looks up one entry; absence is reported by the boolean
	FindByID(platform docsmanifest.Platform, id string) (docsmanifest.DocEntry, bool)
	// PlatformsWithID returns the platforms documenting id
	PlatformsWithID(id string) []docsmanifest.Platform
	// Manifest returns a copy of the full manifest
	Manifest() *docsmanifest.Manifest
}

var _ Catalog = (*docsmanifest.Store)(nil)
