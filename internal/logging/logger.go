package logging

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"organizer/internal/config"

	"github.com/rs/zerolog"
)

const consoleTimeFormat = "2006-01-02_15:04:05"

const logFilePerms = 0o666

// New builds a logger from cfg. Output goes to the configured log file, or
// to stderr when none is set. The returned close function releases the file.
// ORG_DEBUG and verbose both raise the level to debug.
func New(cfg config.LoggingConfig, verbose bool, stderr io.Writer) (zerolog.Logger, func() error, error) {
	noop := func() error { return nil }

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	if (DebugEnabled() || verbose) && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}

	out := stderr
	closeFn := noop
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, fs.FileMode(logFilePerms))
		if err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("failed to open log file: %w", err)
		}
		out = file
		closeFn = file.Close
	}

	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: consoleTimeFormat, NoColor: cfg.File != ""}
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return logger, closeFn, nil
}
