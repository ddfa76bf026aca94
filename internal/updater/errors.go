package updater

import "fmt"

// OperationFailed is the single failure kind reported by UpdateVersion.
// It covers unreadable input, malformed content and write failures alike.
type OperationFailed struct {
	Path    string
	Message string

	cause error
}

func newOperationFailed(path string, cause error) *OperationFailed {
	return &OperationFailed{Path: path, Message: cause.Error(), cause: cause}
}

func (e *OperationFailed) Error() string {
	return fmt.Sprintf("updating %s: %s", e.Path, e.Message)
}

func (e *OperationFailed) Unwrap() error {
	return e.cause
}
