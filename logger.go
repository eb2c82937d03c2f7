package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Package-wide logger, human-readable console output. Every significant
// event carries component, op and reason fields plus a free-text
// message. Tests swap it for a no-op logger.
var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return zerolog.New(console).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
