package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/ramanasai/glassnotes/internal/gesture"
	"github.com/ramanasai/glassnotes/internal/voicemenu"
)

// CommandsModel hosts the voice command reloading demo.
type CommandsModel struct {
	demo       *voicemenu.Demo
	bar        CommandBar
	menuOpen   bool
	input      *gesture.TerminalInput
	classifier *gesture.Classifier
	detected   *gestureQueue
	help       help.Model
	theme      Theme
	status     string
	tone       tone
	quitting   bool
}

func NewCommandsModel(th gesture.Thresholds, theme *Theme, log zerolog.Logger) CommandsModel {
	demo := voicemenu.NewDemo(log)
	q := &gestureQueue{}
	t := DefaultTheme
	if theme != nil {
		t = *theme
	}
	return CommandsModel{
		demo: demo,
		bar: NewCommandBar(func() []string {
			m, enabled := demo.Active()
			if !enabled {
				return nil
			}
			return m.Items
		}, 3),
		input:      gesture.NewTerminalInput(),
		classifier: gesture.NewClassifier(th, q),
		detected:   q,
		help:       help.New(),
		theme:      t,
	}
}

// Demo exposes the screen state, mostly for tests.
func (m CommandsModel) Demo() *voicemenu.Demo { return m.demo }

func (m CommandsModel) Init() tea.Cmd { return nil }

func (m CommandsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.MouseMsg:
		if m.menuOpen {
			return m, nil
		}
		for _, s := range m.input.Samples(msg) {
			m.classifier.OnSample(s)
		}
		var model tea.Model = m
		var cmd tea.Cmd
		for _, g := range m.detected.drain() {
			model, cmd = model.(CommandsModel).gesture(g)
			if cmd != nil {
				return model, cmd
			}
		}
		return model, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.menuOpen {
			return m.updateMenu(msg)
		}
		switch {
		case key.Matches(msg, keys.Tap):
			return m.gesture(gesture.Tap)
		case key.Matches(msg, keys.Forward):
			return m.gesture(gesture.SwipeForward)
		case key.Matches(msg, keys.Backward):
			return m.gesture(gesture.SwipeBackward)
		case key.Matches(msg, keys.Down), key.Matches(msg, keys.Quit):
			return m.gesture(gesture.SwipeDown)
		case key.Matches(msg, keys.Menu):
			if _, enabled := m.demo.Active(); !enabled {
				m.setStatus(toneHint, "Voice commands are off")
				return m, nil
			}
			m.menuOpen = true
			return m, m.bar.Open()
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m CommandsModel) gesture(g gesture.Gesture) (tea.Model, tea.Cmd) {
	handled, quit := m.demo.OnGesture(g)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	if handled {
		m.setStatus(toneHint, "")
	}
	return m, nil
}

func (m CommandsModel) updateMenu(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.Type {
	case tea.KeyEsc:
		m.bar.Close()
		m.menuOpen = false
		return m, nil
	case tea.KeyEnter:
		item := m.bar.Value()
		m.bar.Close()
		m.menuOpen = false
		if item == "" {
			return m, nil
		}
		if m.demo.Select(item) {
			m.setStatus(toneSuccess, "Selected: "+item)
		} else {
			m.setStatus(toneError, fmt.Sprintf("%q is not on this menu", item))
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.bar, cmd = m.bar.Update(k)
	return m, cmd
}

func (m *CommandsModel) setStatus(t tone, s string) {
	m.tone = t
	m.status = s
}

func (m CommandsModel) View() string {
	if m.quitting {
		return ""
	}
	menu, enabled := m.demo.Active()
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Voice commands"))
	b.WriteString("  ")
	b.WriteString(m.theme.Label.Render(fmt.Sprintf("%s screen · %d reloads", m.demo.Screen(), m.demo.Reloads())))
	b.WriteString("\n\n")

	var card strings.Builder
	if enabled {
		card.WriteString(m.theme.Label.Render("ok glass, ..."))
		for _, it := range menu.Items {
			card.WriteString("\n  ")
			card.WriteString(m.theme.Value.Render(it))
		}
	} else {
		card.WriteString(m.theme.Hint.Render("Voice commands disabled"))
	}
	b.WriteString(m.theme.Card.Render(card.String()))
	b.WriteString("\n")
	b.WriteString(m.theme.Hint.Render(m.demo.Hint()))
	if m.demo.Screen() == voicemenu.ScreenMain {
		b.WriteString("\n")
		b.WriteString(m.theme.Hint.Render("Tap to open the alternative screen"))
	}
	b.WriteString("\n\n")
	if m.menuOpen {
		b.WriteString(m.bar.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.theme.status(m.tone, m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(keys))
	return b.String()
}
