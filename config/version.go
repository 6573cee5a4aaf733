package config

// Build information, set with -ldflags "-X github.com/boolean-maybe/tagq/config.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)
