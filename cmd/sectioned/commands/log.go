// Package commands implements the sectioned CLI commands: catalog/preset
// code generation, block document inspection, and a watch-and-regenerate
// dev loop. Verbose logging uses the charmbracelet/log library.
package commands

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with timestamp formatting, filtering at the
// given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// loggerFor returns a stderr logger at debug or info level.
func loggerFor(verbose bool, w io.Writer) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return newLogger(w, level)
}
