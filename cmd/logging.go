package main

import (
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
)

const logTimeFormat = "2006-01-02T15:04:05.000"

// newLogger writes human readable logs to stdout, at debug level if asked to.
func newLogger(debug bool) zerolog.Logger {
	var out io.Writer = os.Stdout
	if runtime.GOOS == "windows" {
		out = colorable.NewColorableStdout()
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{Out: out, TimeFormat: logTimeFormat}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}
