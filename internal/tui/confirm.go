package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
)

// Prompter asks the user a yes/no question.
type Prompter interface {
	Confirm(ctx context.Context, title, description string) (bool, error)
}

// HuhPrompter implements Prompter with a huh confirm field.
type HuhPrompter struct {
	theme *huh.Theme
}

// NewHuhPrompter returns a prompter using the named theme.
// Unknown names fall back to the default theme.
func NewHuhPrompter(themeName string) *HuhPrompter {
	theme := GetTheme(themeName)
	if theme == nil {
		theme = defaultTheme()
	}
	return &HuhPrompter{theme: theme}
}

func (p *HuhPrompter) Confirm(ctx context.Context, title, description string) (bool, error) {
	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Update").
				Negative("Cancel").
				Value(&confirmed),
		),
	).WithTheme(p.theme)

	if err := form.RunWithContext(ctx); err != nil {
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}

	return confirmed, nil
}

// VersionChangeDescription formats the line shown under the confirm title.
func VersionChangeDescription(from, to string) string {
	if from == "" {
		from = "(unset)"
	}
	return fmt.Sprintf("%s → %s", from, to)
}
