package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the launcher
type Styles struct {
	Prompt      lipgloss.Style
	Query       lipgloss.Style
	Cursor      lipgloss.Style
	Hotkey      lipgloss.Style
	Item        lipgloss.Style
	SelectionBg lipgloss.Style
	Empty       lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates styles from the configured accent and selection colors
func NewStyles(accent, selection string) *Styles {
	if accent == "" {
		accent = "99"
	}
	if selection == "" {
		selection = "238"
	}
	return &Styles{
		Prompt:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)),
		Query:       lipgloss.NewStyle().Bold(true),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Hotkey:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Item:        lipgloss.NewStyle(),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color(selection)).Bold(true),
		Empty:       lipgloss.NewStyle().Faint(true).Italic(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
		Help:        lipgloss.NewStyle().Faint(true),
	}
}
