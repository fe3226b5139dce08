package docsmanifest

import _ "embed"

// embeddedManifest is the documentation manifest shipped with the package.
//
//go:embed data/manifest.yaml
var embeddedManifest []byte

const embeddedManifestExt = ".yaml"
