package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme contains style tokens used by the estimator screen.
type Theme struct {
	Name           string
	StatusBarStyle lipgloss.Style
	PanelStyle     lipgloss.Style
	LabelStyle     lipgloss.Style
	SelectedStyle  lipgloss.Style
	ValueStyle     lipgloss.Style
	TotalStyle     lipgloss.Style
	MutedStyle     lipgloss.Style
	ErrorStyle     lipgloss.Style
}

// ResolveTheme returns the named theme or the dark default.
func ResolveTheme(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light":
		return newLightTheme()
	default:
		return newDarkTheme()
	}
}

func newDarkTheme() Theme {
	border := lipgloss.Color("63")
	return Theme{
		Name: "dark",
		StatusBarStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("63")).
			Padding(0, 1),
		PanelStyle: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(border).
			Padding(0, 1),
		LabelStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		SelectedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		ValueStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		TotalStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true),
		MutedStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		ErrorStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	}
}

func newLightTheme() Theme {
	border := lipgloss.Color("246")
	return Theme{
		Name: "light",
		StatusBarStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("189")).
			Padding(0, 1),
		PanelStyle: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(border).
			Padding(0, 1),
		LabelStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("16")),
		SelectedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
		ValueStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
		TotalStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		MutedStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
		ErrorStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
	}
}
