package config

import (
	"errors"
	"fmt"

	"github.com/indaco/update-plist/internal/plistfile"
	"github.com/indaco/update-plist/internal/tui"
)

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() error {
	var errs []error

	if c.BuildVersionKey == "" {
		errs = append(errs, errors.New("build-version-key cannot be empty"))
	}
	if c.DisplayVersionKey == "" {
		errs = append(errs, errors.New("display-version-key cannot be empty"))
	}

	if c.BuildKey != "" && (c.BuildKey == c.BuildVersionKey || c.BuildKey == c.DisplayVersionKey) {
		errs = append(errs, fmt.Errorf("build-key %q must differ from the version keys", c.BuildKey))
	}

	if _, err := plistfile.ParseFormat(c.OutputFormat); err != nil {
		errs = append(errs, fmt.Errorf("output-format: %w", err))
	}

	if c.Theme != "" && !tui.IsValidTheme(c.Theme) {
		errs = append(errs, fmt.Errorf("theme %q is not one of %v", c.Theme, tui.ValidThemes))
	}

	return errors.Join(errs...)
}
