// Package logging configures the diagnostic logger. Check results go to
// stdout through pkg/output; the logger only writes to stderr.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger at warn level, or debug level when verbose.
func New(w io.Writer, verbose, color bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !color,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
