package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CommandBar is the "ok glass" prompt: a text input that suggests the
// entries of the active voice menu as you type.
type CommandBar struct {
	input          textinput.Model
	source         func() []string
	suggestions    []string
	selected       int
	cycled         bool
	maxSuggestions int
	style          lipgloss.Style
}

func NewCommandBar(source func() []string, maxSuggestions int) CommandBar {
	input := textinput.New()
	input.Prompt = "ok glass, "
	input.Placeholder = "say a command..."
	input.CharLimit = 64
	input.Width = 40
	return CommandBar{
		input:          input,
		source:         source,
		maxSuggestions: maxSuggestions,
		style:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Update handles typing and suggestion cycling. Enter and Esc are left to
// the owner.
func (m CommandBar) Update(msg tea.Msg) (CommandBar, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyTab, tea.KeyDown:
			if len(m.suggestions) > 0 {
				m.selected = (m.selected + 1) % len(m.suggestions)
				m.cycled = true
			}
			return m, nil
		case tea.KeyShiftTab, tea.KeyUp:
			if len(m.suggestions) > 0 {
				m.selected = (m.selected - 1 + len(m.suggestions)) % len(m.suggestions)
				m.cycled = true
			}
			return m, nil
		}
	}
	old := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != old {
		m.refresh()
	}
	return m, cmd
}

func (m *CommandBar) refresh() {
	m.suggestions = nil
	m.selected = 0
	m.cycled = false
	if m.source == nil {
		return
	}
	q := strings.ToLower(strings.TrimSpace(m.input.Value()))
	for _, s := range m.source() {
		if q == "" || strings.HasPrefix(strings.ToLower(s), q) {
			m.suggestions = append(m.suggestions, s)
		}
		if len(m.suggestions) >= m.maxSuggestions {
			break
		}
	}
}

// View renders the input and suggestions
func (m CommandBar) View() string {
	var content strings.Builder
	content.WriteString(m.input.View())
	picking := m.cycled || strings.TrimSpace(m.input.Value()) != ""
	for i, s := range m.suggestions {
		content.WriteString("\n")
		if picking && i == m.selected {
			content.WriteString(m.style.Foreground(lipgloss.Color("12")).Render("▶ " + s))
		} else {
			content.WriteString(m.style.Render("  " + s))
		}
	}
	return content.String()
}

// Value is what Enter submits. An empty bar stays empty and a complete
// command is taken as typed; otherwise the highlighted suggestion wins.
func (m CommandBar) Value() string {
	raw := strings.TrimSpace(m.input.Value())
	if m.cycled && len(m.suggestions) > 0 {
		return m.suggestions[m.selected]
	}
	if raw == "" {
		return raw
	}
	if m.source != nil {
		for _, s := range m.source() {
			if strings.EqualFold(s, raw) {
				return s
			}
		}
	}
	if len(m.suggestions) > 0 {
		return m.suggestions[m.selected]
	}
	return raw
}

// Open clears and focuses the bar, showing every command.
func (m *CommandBar) Open() tea.Cmd {
	m.input.SetValue("")
	m.refresh()
	return m.input.Focus()
}

func (m *CommandBar) Close() {
	m.input.Blur()
	m.input.SetValue("")
	m.suggestions = nil
	m.selected = 0
	m.cycled = false
}

func (m CommandBar) Suggestions() []string { return m.suggestions }
