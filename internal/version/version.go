// Package version holds build information injected at link time.
package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/dallasgoldswain/claude-code-agents-manager-sub000/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/dallasgoldswain/claude-code-agents-manager-sub000/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/dallasgoldswain/claude-code-agents-manager-sub000/internal/version.Date={{.Date}}
)

// String formats the build information on three lines.
func String(program string) string {
	return fmt.Sprintf("%s version %s\n  commit: %s\n  built:  %s\n", program, Version, Commit, Date)
}
