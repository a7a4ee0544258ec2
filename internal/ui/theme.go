package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Hint  lipgloss.Style
	// Error and Success color the status line after a failure or a save.
	Error   lipgloss.Style
	Success lipgloss.Style
	// Card frames the current page.
	Card lipgloss.Style
	// Dot marks page indicator positions.
	Dot       lipgloss.Style
	DotActive lipgloss.Style
}

var DefaultTheme = Theme{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Label:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
	Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F2CDCD")),
	Hint:      lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
	Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	Success:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#6C7086")).Padding(1, 2),
	Dot:       lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
	DotActive: lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
}

// MonoTheme avoids colors for terminals that render them badly.
var MonoTheme = Theme{
	Title:     lipgloss.NewStyle().Bold(true),
	Label:     lipgloss.NewStyle().Faint(true),
	Value:     lipgloss.NewStyle(),
	Hint:      lipgloss.NewStyle().Faint(true),
	Error:     lipgloss.NewStyle().Bold(true),
	Success:   lipgloss.NewStyle().Bold(true),
	Card:      lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2),
	Dot:       lipgloss.NewStyle().Faint(true),
	DotActive: lipgloss.NewStyle().Bold(true),
}

type tone int

const (
	toneHint tone = iota
	toneSuccess
	toneError
)

func (t Theme) status(tn tone, s string) string {
	switch tn {
	case toneSuccess:
		return t.Success.Render(s)
	case toneError:
		return t.Error.Render(s)
	}
	return t.Hint.Render(s)
}

// ThemeByName falls back to DefaultTheme for unknown names.
func ThemeByName(name string) Theme {
	if strings.EqualFold(strings.TrimSpace(name), "mono") {
		return MonoTheme
	}
	return DefaultTheme
}
