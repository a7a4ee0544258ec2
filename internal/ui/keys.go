package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Tap      key.Binding
	Forward  key.Binding
	Backward key.Binding
	Down     key.Binding
	Menu     key.Binding
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tap, k.Forward, k.Backward, k.Menu, k.Help, k.Down}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tap, k.Forward, k.Backward, k.Down},
		{k.Menu, k.Add, k.Edit, k.Delete},
		{k.Help, k.Quit},
	}
}

// Keyboard stand-ins for touchpad gestures and the voice menu.
var keys = keyMap{
	Tap: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "tap"),
	),
	Forward: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "swipe forward"),
	),
	Backward: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "swipe back"),
	),
	Down: key.NewBinding(
		key.WithKeys("esc", "down", "j"),
		key.WithHelp("esc", "swipe down"),
	),
	Menu: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "ok glass"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
}
