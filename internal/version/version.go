package version

import (
	"fmt"
	"runtime"
)

// Build metadata set with -ldflags -X
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// GetVersionInfo returns detailed version information
func GetVersionInfo() string {
	if Version == "dev" {
		return fmt.Sprintf("glassnotes dev (%s, %s)", runtime.GOOS, runtime.GOARCH)
	}
	return fmt.Sprintf("glassnotes %s (commit: %s, built: %s, %s/%s)",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}

// GetShortVersion is shown in the TUI footer.
func GetShortVersion() string {
	return "glassnotes " + Version
}
