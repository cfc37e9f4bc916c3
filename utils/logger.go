package utils

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger returns a human friendly console logger.
func NewLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
