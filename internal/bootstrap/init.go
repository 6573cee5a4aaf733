package bootstrap

import (
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/boolean-maybe/tagq/config"
	"github.com/boolean-maybe/tagq/expr"
	"github.com/boolean-maybe/tagq/format"
)

// BootstrapResult contains everything the CLI needs to parse and print expressions.
type BootstrapResult struct {
	Cfg          *config.Config
	LogLevel     slog.Level
	Format       format.Format
	ParseOptions []expr.Option
}

// Bootstrap loads configuration, starts logging and resolves parser and output settings.
// flags must already be parsed.
func Bootstrap(flags *pflag.FlagSet) (*BootstrapResult, error) {
	if err := config.InitPaths(); err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(flags)
	if err != nil {
		return nil, err
	}
	logLevel := InitLogging(cfg)

	outputFormat, err := format.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	opts, err := cfg.ParseOptions()
	if err != nil {
		return nil, err
	}

	slog.Debug("configuration resolved",
		"format", outputFormat,
		"max_depth", cfg.Parser.MaxDepth,
		"trailing", cfg.Parser.Trailing)

	return &BootstrapResult{
		Cfg:          cfg,
		LogLevel:     logLevel,
		Format:       outputFormat,
		ParseOptions: opts,
	}, nil
}
