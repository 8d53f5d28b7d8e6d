package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alkime/musicslider/internal/config"
)

// Level picks the log level for the environment.
func Level(cfg *config.Config) slog.Level {
	logLevel := slog.LevelInfo
	if cfg.Env == config.EnvDevelopment {
		logLevel = slog.LevelDebug
	}
	if cfg.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}

	return logLevel
}

// SetupLogger configures structured logging and sets it as the default
// logger. The returned closer releases the log file, if any.
func SetupLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	var (
		out    io.Writer = io.Discard
		closer io.Closer = io.NopCloser(nil)
	)

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closer = f, f
	}

	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: Level(cfg),
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger, closer, nil
}
