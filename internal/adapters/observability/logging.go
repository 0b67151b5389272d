package observability

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns the process-wide zerolog Logger.
// APP_ENV=dev (or development) uses a human-friendly console writer at debug
// level, so per-field degradation lines from the enrichment pipeline are
// visible while iterating; everything else logs JSON at info.
func NewLogger(env string) zerolog.Logger {
	if env == "dev" || env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Str("service", "trip-scout").Logger()
	}
	return zerolog.New(os.Stdout).
		Level(zerolog.InfoLevel).
		With().Timestamp().Str("service", "trip-scout").Logger()
}
