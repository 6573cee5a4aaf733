package bootstrap

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/boolean-maybe/tagq/config"
)

// LoadConfig loads the application configuration with flag overrides applied.
// Returns an error if configuration loading fails.
func LoadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.LoadConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}
