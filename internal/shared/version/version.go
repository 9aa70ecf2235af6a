// Package version carries build metadata injected with -ldflags.
package version

import "fmt"

// Set at build time: -ldflags "-X github.com/potluckhq/potluck/internal/shared/version.Version=v1.2.0"
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// String renders the build metadata on one line.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate)
}
