package main

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// newLogger returns a human readable zerolog.Logger on w. Stdout carries the
// report, so w is normally stderr. Each package derives its own logger with
// a component field.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), err
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}
