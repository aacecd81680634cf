// Package logging configures structured logging for the application.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New creates the application logger. Output goes to stderr so it never
// interferes with the GUI process streams.
func New() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}

	return zerolog.New(output).
		With().
		Timestamp().
		Logger()
}

// NewNop returns a disabled logger for tests.
func NewNop() zerolog.Logger {
	return zerolog.Nop()
}
