// Package version holds build metadata set with -ldflags "-X".
package version

import "fmt"

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String formats the build metadata for humans.
func String() string {
	return fmt.Sprintf("legalsearch %s (commit %s, built %s)", Version, Commit, Date)
}
