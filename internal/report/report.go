// Package report renders update results as JSON for --json.
package report

import (
	"fmt"
	"io"

	"github.com/indaco/update-plist/internal/updater"
	"github.com/tidwall/sjson"
)

// JSONReporter writes one JSON object per result.
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter returns a reporter writing to w.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

func (j *JSONReporter) Report(r updater.Result) error {
	data, err := Marshal(r)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(j.w, "%s\n", data)
	return err
}

// Marshal encodes the result as a flat JSON object:
// ok, path, version, build, previous, format, dry_run and, on failure, error.
func Marshal(r updater.Result) ([]byte, error) {
	fields := []struct {
		path  string
		value any
		skip  bool
	}{
		{"ok", r.OK(), false},
		{"path", r.Path, false},
		{"version", r.Version, false},
		{"build", r.Build, false},
		{"previous", r.Previous, r.Previous == ""},
		{"format", r.Format.String(), r.Format == ""},
		{"dry_run", r.DryRun, false},
		{"error", errorMessage(r), r.OK()},
	}

	data := []byte("{}")
	for _, f := range fields {
		if f.skip {
			continue
		}
		var err error
		data, err = sjson.SetBytes(data, f.path, f.value)
		if err != nil {
			return nil, fmt.Errorf("failed to set %q in report: %w", f.path, err)
		}
	}

	return data, nil
}

func errorMessage(r updater.Result) string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Message
}
