// Package logging builds the zerolog loggers the binaries hand down into
// the pipeline. Library packages never construct loggers themselves; they
// take a zerolog.Logger value and stay quiet at Nop when given none.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a root logger writing to w at the named level. Unknown
// level names fall back to info. console switches on the human-readable
// writer; the default output is one JSON object per line.
func New(w io.Writer, level string, console bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Stderr returns the standard root logger for a binary.
func Stderr(level string, console bool) zerolog.Logger {
	return New(os.Stderr, level, console)
}
