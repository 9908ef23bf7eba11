// Package logging builds the zerolog loggers used by the host and the
// dock journal.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// ParseLevel maps a config level name to a zerolog level. Unknown names
// fall back to info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New returns a human-readable console logger writing to w.
func New(level string, w io.Writer) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(cw).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// NewJSON returns a structured JSON logger writing to w, for log files and
// pipes.
func NewJSON(level string, w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Auto returns a console logger when w is a terminal and a JSON logger
// otherwise.
func Auto(level string, w io.Writer) zerolog.Logger {
	if IsTerminal(w) {
		return New(level, w)
	}
	return NewJSON(level, w)
}

// Tee writes every event to both the console and a JSON sink. The console
// side is only pretty-printed when it is a terminal.
func Tee(level string, console, file io.Writer) zerolog.Logger {
	out := console
	if IsTerminal(console) {
		out = zerolog.ConsoleWriter{Out: console, TimeFormat: time.RFC3339}
	}
	mlw := zerolog.MultiLevelWriter(out, file)
	return zerolog.New(mlw).Level(ParseLevel(level)).With().Timestamp().Logger()
}
