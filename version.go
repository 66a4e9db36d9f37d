package brewer

import _ "embed"

// Version is the release of the brewer module.
//
//go:embed VERSION
var Version string
