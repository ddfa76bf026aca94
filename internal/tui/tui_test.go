package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestGetTheme(t *testing.T) {
	for _, name := range ValidThemes {
		t.Run(name, func(t *testing.T) {
			if GetTheme(name) == nil {
				t.Errorf("GetTheme(%q) returned nil", name)
			}
		})
	}

	if GetTheme("neon") != nil {
		t.Error("GetTheme should return nil for unknown names")
	}
	if GetTheme("") == nil {
		t.Error("GetTheme(\"\") should return the default theme")
	}
}

func TestIsValidTheme(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"default", true},
		{"dracula", true},
		{"neon", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidTheme(tt.name); got != tt.want {
			t.Errorf("IsValidTheme(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDefaultTheme(t *testing.T) {
	theme := defaultTheme()

	if !theme.Focused.Title.GetBold() {
		t.Error("Focused.Title should be bold")
	}
	if theme.Focused.Base.GetBorderStyle() != lipgloss.RoundedBorder() {
		t.Error("Focused.Base should have rounded border")
	}

	_, right, _, left := theme.Focused.FocusedButton.GetPadding()
	if left != 1 || right != 1 {
		t.Errorf("Focused.FocusedButton padding left=%d right=%d, want 1", left, right)
	}
}

func TestNewHuhPrompter_FallsBackToDefault(t *testing.T) {
	p := NewHuhPrompter("neon")
	if p.theme == nil {
		t.Fatal("prompter theme should never be nil")
	}
}

func TestInCI(t *testing.T) {
	for _, env := range ciEnvs {
		t.Setenv(env, "")
	}
	if InCI() {
		t.Fatal("InCI() should be false with no CI variables set")
	}

	t.Setenv("GITHUB_ACTIONS", "true")
	if !InCI() {
		t.Error("InCI() should be true when GITHUB_ACTIONS is set")
	}
	if IsInteractive() {
		t.Error("IsInteractive() must be false in CI")
	}
}

func TestVersionChangeDescription(t *testing.T) {
	if got := VersionChangeDescription("1.0", "2.0"); got != "1.0 → 2.0" {
		t.Errorf("got %q", got)
	}
	if got := VersionChangeDescription("", "2.0"); got != "(unset) → 2.0" {
		t.Errorf("got %q", got)
	}
}
