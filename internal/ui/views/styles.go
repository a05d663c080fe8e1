package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Border        lipgloss.Style
	Query         lipgloss.Style
	Cursor        lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Highlight     lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Query:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")), // yellow
		Cursor: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Blink(true),
		Dim:    lipgloss.NewStyle().Faint(true),
		Help:   lipgloss.NewStyle().Faint(true),
		Highlight: lipgloss.NewStyle().
			Foreground(lipgloss.Color("21")).
			Background(lipgloss.Color("255")).
			Bold(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
