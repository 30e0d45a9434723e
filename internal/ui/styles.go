package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the grid
type Styles struct {
	Title        lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
	Header       lipgloss.Style
	HeaderActive lipgloss.Style
	SortMark     lipgloss.Style
	Cell         lipgloss.Style
	CursorRow    lipgloss.Style
	Selected     lipgloss.Style
	Action       lipgloss.Style
	ActionDim    lipgloss.Style
	Search       lipgloss.Style
	Help         lipgloss.Style
	Dim          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		HeaderActive: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("226")),
		SortMark:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Cell:         lipgloss.NewStyle(),
		CursorRow:    lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Selected:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Action:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // cyan
		ActionDim:    lipgloss.NewStyle().Faint(true),
		Search:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Help:         lipgloss.NewStyle().Faint(true),
		Dim:          lipgloss.NewStyle().Faint(true),
	}
}

// fit pads or truncates text to exactly width cells
func fit(style lipgloss.Style, text string, width int) string {
	return style.Inline(true).Width(width).MaxWidth(width).Render(text)
}
