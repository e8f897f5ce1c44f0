package wrapper

import (
	_ "embed"
	"strings"
)

// Informs that another directory is about to be inspected.
type ProgressReport struct {
	Count uint64
	Name  string
}

//go:embed version
var version string

// The release version, as embedded at build time.
func Version() string {
	return strings.TrimSpace(version)
}
