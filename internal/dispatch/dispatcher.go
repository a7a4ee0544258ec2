// Package dispatch routes classified gestures, voice menu commands and
// capture results to the active page or to page navigation.
package dispatch

import (
	"github.com/rs/zerolog"

	"github.com/ramanasai/glassnotes/internal/capture"
	"github.com/ramanasai/glassnotes/internal/gesture"
	"github.com/ramanasai/glassnotes/internal/notes"
	"github.com/ramanasai/glassnotes/internal/pager"
)

// Mutator queues note mutations; notes.Worker is the production one.
type Mutator interface {
	Submit(op notes.Op) error
}

// Outcome tells the host what an input led to.
type Outcome struct {
	// Handled is false when nothing reacted to the input.
	Handled bool
	// Capture is set when the host must run a recognizer for this request.
	Capture *capture.Request
	// Quit asks the host to end the session.
	Quit bool
	// Stale marks a capture result that was superseded or already resolved.
	Stale bool
}

// Dispatcher owns no state besides the pending capture; the page sequence
// and cursor belong to the controller, notes to the store.
type Dispatcher struct {
	ctrl    *pager.Controller
	mut     Mutator
	tracker *capture.Tracker
	log     zerolog.Logger
}

func New(ctrl *pager.Controller, mut Mutator, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		ctrl:    ctrl,
		mut:     mut,
		tracker: capture.NewTracker(),
		log:     log,
	}
}

// Tracker exposes pending capture state to the host.
func (d *Dispatcher) Tracker() *capture.Tracker { return d.tracker }

// OnGesture handles one classified gesture.
func (d *Dispatcher) OnGesture(g gesture.Gesture) Outcome {
	if g == gesture.SwipeDown {
		return Outcome{Handled: true, Quit: true}
	}
	if page, ok := d.ctrl.Current(); ok {
		if out, handled := d.pageGesture(page, g); handled {
			return out
		}
	}
	nav := d.ctrl.Navigator()
	switch g {
	case gesture.SwipeForward:
		nav.Next()
		return Outcome{Handled: true}
	case gesture.SwipeBackward:
		nav.Previous()
		return Outcome{Handled: true}
	}
	return Outcome{}
}

func (d *Dispatcher) pageGesture(p pager.Page, g gesture.Gesture) (Outcome, bool) {
	switch p.Kind {
	case pager.KindOption:
		if p.Option.Name == pager.AddNote.Name && g == gesture.Tap {
			return d.beginCapture(capture.PurposeCreate, 0), true
		}
	case pager.KindNote:
		// note pages only react to the shared gestures
	}
	return Outcome{}, false
}

// OnCommand handles a selected voice menu command.
func (d *Dispatcher) OnCommand(c Command) Outcome {
	nav := d.ctrl.Navigator()
	switch c {
	case CommandNext:
		nav.Next()
		return Outcome{Handled: true}
	case CommandPrevious:
		nav.Previous()
		return Outcome{Handled: true}
	case CommandAdd:
		return d.beginCapture(capture.PurposeCreate, 0)
	case CommandDelete:
		page, ok := d.ctrl.Current()
		if !ok || page.Kind != pager.KindNote {
			d.log.Debug().Int("index", nav.Current()).Msg("delete ignored on option page")
			return Outcome{}
		}
		d.submit(notes.Op{Kind: notes.OpDelete, ID: page.Note.ID})
		return Outcome{Handled: true}
	case CommandEdit:
		page, ok := d.ctrl.Current()
		if !ok || page.Kind != pager.KindNote {
			d.log.Debug().Int("index", nav.Current()).Msg("edit ignored on option page")
			return Outcome{}
		}
		return d.beginCapture(capture.PurposeEdit, page.Note.ID)
	}
	d.log.Debug().Str("command", string(c)).Msg("unknown command")
	return Outcome{}
}

// OnCaptureResult completes a capture. Stale tokens, failures and empty
// text are logged and change nothing.
func (d *Dispatcher) OnCaptureResult(res capture.Result) Outcome {
	req, ok := d.tracker.Resolve(res.Token)
	if !ok {
		d.log.Debug().Str("token", res.Token).Msg("stale capture result discarded")
		return Outcome{Stale: true}
	}
	if res.Err != nil {
		d.log.Info().Err(res.Err).Str("purpose", req.Purpose.String()).Msg("voice recognition failed")
		return Outcome{}
	}
	text, err := capture.Normalize(res.Text)
	if err != nil {
		d.log.Info().Err(err).Str("purpose", req.Purpose.String()).Msg("voice recognition result is empty")
		return Outcome{}
	}

	switch req.Purpose {
	case capture.PurposeCreate:
		d.submit(notes.Op{Kind: notes.OpInsert, Title: text, Body: text})
	case capture.PurposeEdit:
		d.submit(notes.Op{Kind: notes.OpUpdate, ID: req.NoteID, Title: text, Body: text})
	}
	return Outcome{Handled: true}
}

func (d *Dispatcher) beginCapture(p capture.Purpose, noteID int64) Outcome {
	req := d.tracker.Begin(p, noteID)
	d.log.Debug().Str("token", req.Token).Str("purpose", p.String()).Int64("note", noteID).Msg("capture started")
	return Outcome{Handled: true, Capture: &req}
}

func (d *Dispatcher) submit(op notes.Op) {
	if err := d.mut.Submit(op); err != nil {
		d.log.Error().Err(err).Str("op", string(op.Kind)).Msg("queue note mutation")
	}
}
