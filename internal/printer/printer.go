package printer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Style definitions for consistent console output across the application.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan
)

// SetNoColor switches the renderer to plain ASCII output when disabled is true.
func SetNoColor(disabled bool) {
	if disabled {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Render functions return styled strings without printing.

// Success returns text with success (green) styling.
func Success(text string) string {
	return successStyle.Render(text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return errorStyle.Render(text)
}

// Info returns text with info (cyan) styling.
func Info(text string) string {
	return infoStyle.Render(text)
}

// Fprint functions write styled text followed by a newline to w.

// FprintSuccess writes text with success (green) styling.
func FprintSuccess(w io.Writer, text string) error {
	_, err := fmt.Fprintln(w, Success(text))
	return err
}

// FprintError writes text with error (red) styling.
func FprintError(w io.Writer, text string) error {
	_, err := fmt.Fprintln(w, Error(text))
	return err
}

// FprintInfo writes text with info (cyan) styling.
func FprintInfo(w io.Writer, text string) error {
	_, err := fmt.Fprintln(w, Info(text))
	return err
}
