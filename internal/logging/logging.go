package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the logger for one CLI invocation. Verbose wins over quiet
// when both are set.
func New(verbose, quiet bool) zerolog.Logger {
	return NewWithWriter(os.Stderr, verbose, quiet)
}

// NewWithWriter is New with an explicit sink, for tests.
func NewWithWriter(out io.Writer, verbose, quiet bool) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case verbose:
		level = zerolog.DebugLevel
	case quiet:
		level = zerolog.ErrorLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
	}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}
