package table

import "github.com/charmbracelet/lipgloss"

var (
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
)

// Styles renders the row markers kept in the drag registry.
type Styles struct {
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Row       lipgloss.Style
	Locked    lipgloss.Style
	Dragging  lipgloss.Style
	Handle    lipgloss.Style
	Indicator lipgloss.Style
}

// DefaultStyles returns the built-in styles.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#333", Dark: "#FFF"}),
		Cell: lipgloss.NewStyle().Padding(0, 1),
		Row:  lipgloss.NewStyle(),
		Locked: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#969B86", Dark: "#696969"}),
		Dragging: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(highlight),
		Handle: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#585858"}),
		Indicator: lipgloss.NewStyle().
			Foreground(special),
	}
}
