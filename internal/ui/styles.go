// Package ui holds terminal output styling and diff rendering for the
// command-line surface.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles is the color palette used for CLI reporting.
type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style

	DiffAdd    lipgloss.Style
	DiffRemove lipgloss.Style
	DiffHunk   lipgloss.Style
}

// DefaultStyles returns the standard palette.
func DefaultStyles() *Styles {
	return &Styles{
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Warning:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:       lipgloss.NewStyle().Bold(true),
		DiffAdd:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		DiffRemove: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		DiffHunk:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// PlainStyles returns a palette with no styling, for --no-color or
// non-terminal output.
func PlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Success: plain, Error: plain, Warning: plain, Muted: plain, Bold: plain,
		DiffAdd: plain, DiffRemove: plain, DiffHunk: plain,
	}
}
