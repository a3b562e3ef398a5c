package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the select
type Styles struct {
	Prompt      lipgloss.Style
	Trigger     lipgloss.Style
	TriggerOpen lipgloss.Style
	Placeholder lipgloss.Style
	Value       lipgloss.Style
	List        lipgloss.Style
	Focused     lipgloss.Style
	Selected    lipgloss.Style
	Disabled    lipgloss.Style
	Scroll      lipgloss.Style
	Query       lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Prompt:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Trigger:     lipgloss.NewStyle().Padding(0, 1),
		TriggerOpen: lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("238")),
		Placeholder: lipgloss.NewStyle().Faint(true),
		Value:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		List: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		Focused:  lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("226")).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Disabled: lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Scroll:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Query:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:     lipgloss.NewStyle().Faint(true),
	}
}
