package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X ilweld/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X ilweld/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X ilweld/internal/version.Date={{.Date}}
)
