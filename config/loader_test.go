package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

// setupConfigEnv isolates config lookup in fresh temp directories
func setupConfigEnv(t *testing.T) {
	t.Helper()
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	ResetPathManager()
	t.Cleanup(ResetPathManager)
	if err := InitPaths(); err != nil {
		t.Fatalf("InitPaths() error = %v", err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	setupConfigEnv(t)

	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want 'error'", cfg.Logging.Level)
	}
	if cfg.Output.Format != "tree" {
		t.Errorf("Output.Format = %q, want 'tree'", cfg.Output.Format)
	}
	if cfg.Parser.MaxDepth != 1000 {
		t.Errorf("Parser.MaxDepth = %d, want 1000", cfg.Parser.MaxDepth)
	}
	if cfg.Parser.Trailing != "reject" {
		t.Errorf("Parser.Trailing = %q, want 'reject'", cfg.Parser.Trailing)
	}
}

func TestLoadConfigPrecedence(t *testing.T) {
	setupConfigEnv(t)

	writeFile(t, filepath.Join(GetConfigDir(), "config.yaml"),
		"output:\n  format: yaml\nparser:\n  maxDepth: 50\n")
	writeFile(t, GetProjectConfigFile(),
		"output:\n  format: json\nparser:\n  trailing: ignore\n")

	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	// viper reads only the first config found; the project file wins
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want 'json' from project config", cfg.Output.Format)
	}
	if cfg.Parser.Trailing != "ignore" {
		t.Errorf("Parser.Trailing = %q, want 'ignore'", cfg.Parser.Trailing)
	}
	if cfg.Parser.MaxDepth != 1000 {
		t.Errorf("Parser.MaxDepth = %d, want default 1000", cfg.Parser.MaxDepth)
	}
}

func TestLoadConfigEnvAndFlags(t *testing.T) {
	setupConfigEnv(t)
	writeFile(t, GetProjectConfigFile(), "output:\n  format: json\n")
	t.Setenv("TAGQ_LOGGING_LEVEL", "debug")
	t.Setenv("TAGQ_OUTPUT_FORMAT", "yaml")

	flags := pflag.NewFlagSet("tagq", pflag.ContinueOnError)
	RegisterFlags(flags)
	if err := flags.Parse([]string{"--format", "expr", "--max-depth", "7"}); err != nil {
		t.Fatalf("flag parse error = %v", err)
	}

	cfg, err := LoadConfig(flags)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want 'debug' from env", cfg.Logging.Level)
	}
	if cfg.Output.Format != "expr" {
		t.Errorf("Output.Format = %q, want 'expr' from flag", cfg.Output.Format)
	}
	if cfg.Parser.MaxDepth != 7 {
		t.Errorf("Parser.MaxDepth = %d, want 7 from flag", cfg.Parser.MaxDepth)
	}
	if cfg.Parser.Trailing != "reject" {
		t.Errorf("Parser.Trailing = %q, want default 'reject' for unset flag", cfg.Parser.Trailing)
	}
}

func TestLoadConfigInvalidFile(t *testing.T) {
	setupConfigEnv(t)
	writeFile(t, GetProjectConfigFile(), "output: [unclosed\n")

	if _, err := LoadConfig(nil); err == nil {
		t.Fatal("Expected error for malformed config.yaml, got nil")
	}
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name     string
		trailing string
		maxDepth int
		wantErr  bool
		wantOpts int
	}{
		{name: "defaults", trailing: "reject", maxDepth: 1000, wantOpts: 2},
		{name: "empty trailing means reject", trailing: "", maxDepth: 0, wantOpts: 2},
		{name: "ignore", trailing: "IGNORE", maxDepth: 10, wantOpts: 2},
		{name: "unknown policy", trailing: "warn", wantErr: true},
		{name: "negative depth", trailing: "reject", maxDepth: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Parser.Trailing = tt.trailing
			cfg.Parser.MaxDepth = tt.maxDepth

			opts, err := cfg.ParseOptions()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOptions() error = %v", err)
			}
			if len(opts) != tt.wantOpts {
				t.Errorf("ParseOptions() returned %d options, want %d", len(opts), tt.wantOpts)
			}
		})
	}

	cfg := &Config{}
	cfg.Parser.Trailing = "warn"
	if _, err := cfg.ParseOptions(); !errors.Is(err, ErrInvalidTrailingPolicy) {
		t.Errorf("Expected ErrInvalidTrailingPolicy, got %v", err)
	}
}
