package updater

import (
	"io"

	"github.com/indaco/update-plist/internal/printer"
)

// Reporter announces the outcome of an update.
type Reporter interface {
	Report(Result) error
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Result) error

func (f ReporterFunc) Report(r Result) error {
	return f(r)
}

// TextReporter prints the outcome line with printer styling.
type TextReporter struct {
	w io.Writer
}

// NewTextReporter returns a TextReporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

func (t *TextReporter) Report(r Result) error {
	switch {
	case !r.OK():
		return printer.FprintError(t.w, r.Message())
	case r.DryRun:
		return printer.FprintInfo(t.w, r.Message())
	default:
		return printer.FprintSuccess(t.w, r.Message())
	}
}
