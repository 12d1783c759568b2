// Package cli provides common initialization for the sweatlog entrypoint.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"sweatlog/internal/config"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging and sets the result as the
// default logger. The handler writes to stderr: stdout is reserved for the
// single summary or error line the CLI contract promises. An unusable
// LOG_LEVEL degrades to info with a warning rather than failing the run.
func SetupLogger(cfg *config.Config) *slog.Logger {
	level, err := cfg.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	if err != nil {
		logger.Warn("Falling back to info logging", "error", err)
	}
	return logger
}
