// Package logging builds the zerolog logger shared by the server and the CLI.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing to w (stderr when nil). Local environments get
// human-readable console output; everything else logs JSON.
func New(env string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	level := zerolog.InfoLevel
	if env == "local" || env == "dev" {
		level = zerolog.DebugLevel
	}
	if env == "local" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Str("env", env).Logger()
}
