package config

// Viper configuration loader: reads config.yaml from the project and user config directories

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all application configuration loaded from config.yaml
type Config struct {
	// Logging configuration
	Logging struct {
		Level string `mapstructure:"level"` // "debug", "info", "warn", "error"
	} `mapstructure:"logging"`

	// Output configuration
	Output struct {
		Format string `mapstructure:"format"` // "tree", "json", "yaml", "expr"
	} `mapstructure:"output"`

	// Parser configuration
	Parser struct {
		MaxDepth int    `mapstructure:"maxDepth"` // 0 disables the limit
		Trailing string `mapstructure:"trailing"` // "reject" or "ignore"
	} `mapstructure:"parser"`
}

// flag name → config key
var flagKeys = map[string]string{
	"log-level": "logging.level",
	"format":    "output.format",
	"max-depth": "parser.maxDepth",
	"trailing":  "parser.trailing",
}

// RegisterFlags adds the flags that override config values to flagSet.
// Pass the same flag set to LoadConfig after parsing.
func RegisterFlags(flagSet *pflag.FlagSet) {
	flagSet.String("log-level", "", "Log level (debug, info, warn, error)")
	flagSet.String("format", "", "Output format (tree, json, yaml, expr)")
	flagSet.Int("max-depth", 0, "Maximum nesting depth (0 = no limit)")
	flagSet.String("trailing", "", "Tokens after a complete expression (reject, ignore)")
}

// LoadConfig loads configuration from config.yaml
// Priority order (first found wins): project config → user config → current directory (dev)
// Environment variables (TAGQ_*) and flags that were explicitly set override file values.
// If config.yaml doesn't exist, it uses default values
func LoadConfig(flagSet *pflag.FlagSet) (*Config, error) {
	// Reset viper to clear any previous configuration
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add search paths in priority order (first added = highest priority)
	viper.AddConfigPath(filepath.Dir(GetProjectConfigFile()))
	viper.AddConfigPath(GetConfigDir())
	viper.AddConfigPath(".")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Debug("no config.yaml found, using defaults")
		} else {
			slog.Error("error reading config file", "error", err)
			return nil, err
		}
	} else {
		slog.Debug("loaded configuration", "file", viper.ConfigFileUsed())
	}

	// Allow environment variables to override config file
	viper.SetEnvPrefix("TAGQ")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if flagSet != nil {
		if err := bindFlags(flagSet); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		slog.Error("failed to unmarshal config", "error", err)
		return nil, err
	}

	return cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("logging.level", "error")
	viper.SetDefault("output.format", "tree")
	viper.SetDefault("parser.maxDepth", 1000)
	viper.SetDefault("parser.trailing", "reject")
}

// bindFlags binds flags that were set on the command line so they override config values.
// Unset flags are skipped so their zero defaults never mask the file or env value.
func bindFlags(flagSet *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flagSet.Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}
