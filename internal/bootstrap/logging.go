package bootstrap

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/boolean-maybe/tagq/config"
)

// InitLogging installs a stderr text logger at the configured level and returns the level.
func InitLogging(cfg *config.Config) slog.Level {
	return initLogging(cfg, os.Stderr)
}

func initLogging(cfg *config.Config, w io.Writer) slog.Level {
	level := parseLevel(cfg.Logging.Level)
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return level
}

// parseLevel maps a config level name to slog; unknown names fall back to error
func parseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
