// Package voicemenu is the voice command reloading demo: two screens whose
// voice menus change at runtime and must be reloaded after every change.
package voicemenu

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/ramanasai/glassnotes/internal/gesture"
)

// Menu is a named set of voice commands.
type Menu struct {
	Name  string
	Items []string
}

func (m Menu) Contains(item string) bool {
	for _, it := range m.Items {
		if strings.EqualFold(it, strings.TrimSpace(item)) {
			return true
		}
	}
	return false
}

var (
	Main        = Menu{Name: "main", Items: []string{"Send message", "Take a picture", "Record video"}}
	Alternative = Menu{Name: "alternative", Items: []string{"Navigate", "Make a call", "Play music"}}
)

// Screen identifies a demo screen.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenAlternative
)

func (s Screen) String() string {
	if s == ScreenAlternative {
		return "alternative"
	}
	return "main"
}

// Demo holds the screen stack and each screen's menu state.
type Demo struct {
	stack []Screen
	// main screen: voice commands on or off
	enabled bool
	// alternative screen: main menu or alternative menu
	useMain  bool
	reloads  int
	onReload func(m Menu, enabled bool)
	log      zerolog.Logger
}

func NewDemo(log zerolog.Logger) *Demo {
	return &Demo{stack: []Screen{ScreenMain}, enabled: true, useMain: true, log: log}
}

// OnReload registers the hook fired every time the active menu has to be
// rebuilt.
func (d *Demo) OnReload(f func(m Menu, enabled bool)) { d.onReload = f }

// Screen is the top of the stack.
func (d *Demo) Screen() Screen { return d.stack[len(d.stack)-1] }

// Depth is the number of open screens.
func (d *Demo) Depth() int { return len(d.stack) }

// Reloads counts menu reloads so far.
func (d *Demo) Reloads() int { return d.reloads }

// Active returns the current screen's menu and whether voice commands are
// enabled on it.
func (d *Demo) Active() (Menu, bool) {
	if d.Screen() == ScreenAlternative {
		if d.useMain {
			return Main, true
		}
		return Alternative, true
	}
	return Main, d.enabled
}

// Hint describes what the next swipe will do.
func (d *Demo) Hint() string {
	if d.Screen() == ScreenAlternative {
		return "Swipe forward or backward to switch voice command lists"
	}
	if d.enabled {
		return "Swipe forward to disable voice commands"
	}
	return "Swipe forward to enable voice commands"
}

// OnGesture applies a gesture. quit is true once the last screen closed.
func (d *Demo) OnGesture(g gesture.Gesture) (handled, quit bool) {
	switch g {
	case gesture.SwipeDown:
		d.stack = d.stack[:len(d.stack)-1]
		if len(d.stack) == 0 {
			d.stack = []Screen{ScreenMain}
			return true, true
		}
		d.reload()
		return true, false
	case gesture.SwipeForward, gesture.SwipeBackward:
		if d.Screen() == ScreenAlternative {
			d.useMain = !d.useMain
		} else {
			d.enabled = !d.enabled
		}
		d.reload()
		return true, false
	case gesture.Tap:
		if d.Screen() == ScreenMain {
			d.useMain = true
			d.stack = append(d.stack, ScreenAlternative)
			d.reload()
			return true, false
		}
	}
	return false, false
}

// Select handles a spoken menu item. It reports whether the item belongs
// to the active, enabled menu.
func (d *Demo) Select(item string) bool {
	m, enabled := d.Active()
	if !enabled || !m.Contains(item) {
		d.log.Debug().Str("item", item).Str("screen", d.Screen().String()).Msg("unlisted voice command")
		return false
	}
	d.log.Info().Str("item", item).Str("menu", m.Name).Msg("menu item selected")
	return true
}

func (d *Demo) reload() {
	d.reloads++
	m, enabled := d.Active()
	d.log.Debug().Str("menu", m.Name).Bool("enabled", enabled).Msg("reload voice commands")
	if d.onReload != nil {
		d.onReload(m, enabled)
	}
}
