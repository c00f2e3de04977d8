// Package logging provides the developer-facing diagnostic channel.
// Catalog load failures are reported here rather than surfaced in the
// UI; the dialog simply renders its empty state.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/tagsurf/tagsurf-terminal/pkg/settings"
)

const logFileName = "tagsurf.log"

// NewCLILogger returns a logger writing human-readable output to stderr,
// for non-interactive commands.
func NewCLILogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

// NewTUILogger returns a logger writing to a log file under the config
// directory, so diagnostics never corrupt the terminal UI. If the file
// cannot be opened the logger discards everything.
func NewTUILogger() (zerolog.Logger, io.Closer) {
	dir, err := settings.Dir()
	if err != nil {
		return nopLogger(), nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nopLogger(), nil
	}

	path := filepath.Join(dir, logFileName)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nopLogger(), nil
	}

	logger := zerolog.New(file).With().Timestamp().Logger()
	return logger, file
}

func nopLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}
