// Package ui provides terminal output for the generator: a color theme,
// status line printing, progress display, and headless-mode detection.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Colors holds the hex color values used across UI components.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme bundles the color palette with a NoColor switch. When NoColor is
// set every component falls back to plain text.
type Theme struct {
	Colors  Colors
	NoColor bool
}

// DefaultTheme returns the standard palette. NO_COLOR in the environment
// disables color output.
func DefaultTheme() *Theme {
	return &Theme{
		Colors: Colors{
			Primary:   "#7C3AED",
			Secondary: "#2563EB",
			Success:   "#16A34A",
			Warning:   "#D97706",
			Error:     "#DC2626",
			Muted:     "#6B7280",
		},
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}

// style returns a foreground style for the given hex color, or an empty
// style when colors are disabled.
func (t *Theme) style(hex string) lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// Progress creates progress indicators appropriate for the terminal state.
type Progress interface {
	Start(title string, total int) ProgressBar
	Spinner(title string) Spinner
}

// ProgressBar is a determinate progress indicator.
type ProgressBar interface {
	Increment(n int)
	SetTitle(title string)
	Done()
}

// Spinner is an indeterminate progress indicator.
type Spinner interface {
	SetTitle(title string)
	Stop()
}
