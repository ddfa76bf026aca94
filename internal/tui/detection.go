package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvs are environment variables whose presence marks a CI run.
var ciEnvs = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"CIRCLECI",
	"JENKINS_HOME",
	"BUILDKITE",
	"BITBUCKET_BUILD_NUMBER",
	"TF_BUILD",
	"CI_XCODE_PROJECT",
}

// IsInteractive reports whether a confirmation prompt can be shown:
// both stdin and stdout are terminals and no CI indicator is set.
func IsInteractive() bool {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return false
	}
	return !InCI()
}

// InCI reports whether a known CI environment variable is set.
func InCI() bool {
	for _, env := range ciEnvs {
		if os.Getenv(env) != "" {
			return true
		}
	}
	return false
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
}
