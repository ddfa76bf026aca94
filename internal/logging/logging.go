// Package logging builds the leveled stderr logger used for diagnostics.
// Outcome lines go through the reporter; the logger only carries detail
// that helps when a run misbehaves.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w. Verbose lowers the level to debug;
// otherwise only warnings and errors are emitted.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "update_plist",
	})
}
