package updater

import (
	"fmt"

	"github.com/indaco/update-plist/internal/plistfile"
)

// Result is the outcome of one UpdateVersion call.
type Result struct {
	Path     string
	Version  string
	Build    string
	Previous string
	Format   plistfile.Format
	DryRun   bool

	// Err is nil on success.
	Err *OperationFailed
}

// OK reports whether the update succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Message returns the human readable outcome line.
func (r Result) Message() string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("Error updating %s: %s", r.Path, r.Err.Message)
	case r.DryRun:
		return fmt.Sprintf("Would update %s to version %s", r.Path, r.Version)
	default:
		return fmt.Sprintf("Updated %s to version %s", r.Path, r.Version)
	}
}
