package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"consultdesk/internal/config"

	"github.com/rs/zerolog"
)

const appName = "consultdesk"

// New constructs a zerolog logger from config settings.
// Defaults to JSON at info level on stdout.
func New(cfg config.LoggingConfig, env string) *zerolog.Logger {
	return NewWithWriter(cfg, env, os.Stdout)
}

func NewWithWriter(cfg config.LoggingConfig, env string, out io.Writer) *zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level))); err == nil && parsed != zerolog.NoLevel {
		level = parsed
	}

	if strings.ToLower(strings.TrimSpace(cfg.Format)) == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	base := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("app", appName).
		Str("env", env).
		Logger()

	return &base
}

// Nop is a disabled logger for tests and optional collaborators.
func Nop() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}
