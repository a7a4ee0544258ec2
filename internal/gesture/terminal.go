package gesture

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TerminalInput maps terminal mouse events onto touchpad samples. A left
// button drag acts as one finger, a right button drag as two fingers
// moving together.
type TerminalInput struct {
	// CellWidth and CellHeight convert cell coordinates to pixels.
	CellWidth  float64
	CellHeight float64
	Now        func() time.Time

	twoFinger bool
}

// NewTerminalInput returns an adapter with typical cell metrics.
func NewTerminalInput() *TerminalInput {
	return &TerminalInput{CellWidth: 10, CellHeight: 20, Now: time.Now}
}

// Samples converts one mouse event. Events that are not part of a drag
// interaction yield nothing.
func (in *TerminalInput) Samples(m tea.MouseMsg) []Sample {
	now := time.Now
	if in.Now != nil {
		now = in.Now
	}
	t := now()
	p := Point{X: float64(m.X) * in.CellWidth, Y: float64(m.Y) * in.CellHeight}
	pointers := func() []Point {
		if in.twoFinger {
			return []Point{p, p}
		}
		return []Point{p}
	}

	switch m.Action {
	case tea.MouseActionPress:
		switch m.Button {
		case tea.MouseButtonLeft:
			in.twoFinger = false
			return []Sample{{Action: ActionDown, Pointers: []Point{p}, Time: t}}
		case tea.MouseButtonRight:
			in.twoFinger = true
			return []Sample{
				{Action: ActionDown, Pointers: []Point{p}, Time: t},
				{Action: ActionPointerDown, Pointers: []Point{p, p}, Time: t},
			}
		}
	case tea.MouseActionMotion:
		if m.Button == tea.MouseButtonLeft || m.Button == tea.MouseButtonRight {
			return []Sample{{Action: ActionMove, Pointers: pointers(), Time: t}}
		}
	case tea.MouseActionRelease:
		s := Sample{Action: ActionUp, Pointers: pointers(), Time: t}
		in.twoFinger = false
		return []Sample{s}
	}
	return nil
}
