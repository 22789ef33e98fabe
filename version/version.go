package version

import "fmt"

// Tagline is the application's tagline used in help text and the TUI header
const Tagline = "I'm Tally, and I count the hours you put into tasks"

// Build information injected at build time via ldflags
// Example: -ldflags="-X github.com/renato0307/tally/version.Version=v1.0.0"
var (
	Version   = "dev"     // Semantic version or "dev"
	Commit    = "unknown" // Git commit hash
	Date      = "unknown" // Build date (RFC3339)
	GoVersion = "unknown" // Go version used
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("tally %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}
