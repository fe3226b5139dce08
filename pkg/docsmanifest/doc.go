// Package docsmanifest provides the documentation manifest: a read-only
// registry mapping platform keys ("js", "react", "vue") to the ordered list
// of documentation pages published for that platform.
//
// # Manifest Format
//
// The canonical form is a YAML (or JSON) mapping whose key order is the
// platform declaration order:
//
//	js:
//	  - id: quick-start
//	    title: Get started with Motion
//	    description: Install Motion and create your first animation.
//	react:
//	  - id: motion-component
//	    title: Motion component
//	    description: Animate HTML and SVG elements with the motion component.
//
// # Usage
//
// The dataset shipped with the package is loaded once on first use:
//
//	store := docsmanifest.MustDefault()
//
//	for _, platform := range store.ListPlatforms() {
//	    entries, _ := store.GetEntries(platform)
//	    // ...
//	}
//
//	entry, ok := store.FindByID(docsmanifest.PlatformReact, "animate-view")
//
// # Error Handling
//
// Loading fails with a *ValidationError when the data breaks an invariant
// (empty field, duplicate id within a platform, unknown or malformed key).
// GetEntries fails with a *NotFoundError for an unknown platform. FindByID
// reports absence with a boolean rather than an error.
package docsmanifest
