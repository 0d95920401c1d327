package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Button         lipgloss.Style
	ButtonActive   lipgloss.Style
	Panel          lipgloss.Style
	SearchIcon     lipgloss.Style
	Category       lipgloss.Style
	CategoryActive lipgloss.Style
	Row            lipgloss.Style
	RowSelected    lipgloss.Style
	Star           lipgloss.Style
	StarEmpty      lipgloss.Style
	Scroll         lipgloss.Style
	Help           lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Button: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("238")),
		ButtonActive: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("99")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		SearchIcon: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Category: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("245")),
		CategoryActive: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("99")),
		Row:         lipgloss.NewStyle(),
		RowSelected: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Star:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")), // yellow
		StarEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:        lipgloss.NewStyle().Faint(true),
	}
}
