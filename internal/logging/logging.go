// Package logging builds the zerolog logger shared by the CLI and the TUI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ramanasai/glassnotes/internal/config"
)

const permission = 0o664

// Logger bundles the logger with the file it writes to, if any.
type Logger struct {
	zerolog.Logger
	file *os.File
}

// Close releases the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// ParseLevel accepts zerolog level names; empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}

// New writes to w through a console writer. Used by the CLI commands, where
// stderr is free.
func New(cfg config.LogConfig, w io.Writer) (*Logger, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: true}
	return &Logger{Logger: zerolog.New(out).Level(lvl).With().Timestamp().Logger()}, nil
}

// NewFile appends JSON lines to cfg.File, or to glassnotes.log in dataDir.
// The TUI owns the terminal so it logs here instead.
func NewFile(cfg config.LogConfig, dataDir string) (*Logger, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	path := cfg.File
	if path == "" {
		path = filepath.Join(dataDir, "glassnotes.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
	if err != nil {
		return nil, err
	}
	l := zerolog.New(zerolog.SyncWriter(f)).Level(lvl).With().Timestamp().Logger()
	return &Logger{Logger: l, file: f}, nil
}
