// Package log configures the process-wide slog logger for the command-line
// tools. Library packages do not log; they return errors and let callers
// decide.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger initialization.
type Options struct {
	Level  string // debug|info|warn|error, default info
	Format string // "text" or "json", default text
	File   string // optional path; enables rotated file logging alongside stderr
}

// Init installs the configured logger as slog's default.
func Init(opts Options) {
	lvl := parseLevel(opts.Level)

	var w io.Writer = os.Stderr
	if strings.TrimSpace(opts.File) != "" {
		rotated := &lj.Logger{
			Filename:   opts.File,
			MaxSize:    10, // MB
			MaxBackups: 3,
			Compress:   true,
		}
		w = io.MultiWriter(os.Stderr, rotated)
	}

	var h slog.Handler
	if strings.EqualFold(opts.Format, "json") {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	} else {
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	}
	slog.SetDefault(slog.New(h))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
