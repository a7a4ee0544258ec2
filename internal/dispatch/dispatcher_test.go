package dispatch

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/glassnotes/internal/capture"
	"github.com/ramanasai/glassnotes/internal/gesture"
	"github.com/ramanasai/glassnotes/internal/notes"
	"github.com/ramanasai/glassnotes/internal/pager"
)

type recorder struct{ ops []notes.Op }

func (r *recorder) Submit(op notes.Op) error {
	r.ops = append(r.ops, op)
	return nil
}

func setup(t *testing.T, ids ...int64) (*Dispatcher, *pager.Controller, *recorder, *bytes.Buffer) {
	t.Helper()
	ctrl := pager.NewController(pager.DefaultOptions())
	var list []notes.Note
	for _, id := range ids {
		list = append(list, notes.Note{ID: id, Title: "t", Body: "b"})
	}
	ctrl.Rebuild(list)
	rec := &recorder{}
	var logs bytes.Buffer
	return New(ctrl, rec, zerolog.New(&logs).Level(zerolog.DebugLevel)), ctrl, rec, &logs
}

func TestDispatcher_TapOnAddStartsCreateCapture(t *testing.T) {
	d, _, rec, _ := setup(t)

	out := d.OnGesture(gesture.Tap)
	require.NotNil(t, out.Capture)
	assert.Equal(t, capture.PurposeCreate, out.Capture.Purpose)

	out = d.OnCaptureResult(capture.Result{Token: out.Capture.Token, Text: " buy milk "})
	assert.True(t, out.Handled)
	require.Len(t, rec.ops, 1)
	assert.Equal(t, notes.Op{Kind: notes.OpInsert, Title: "buy milk", Body: "buy milk"}, rec.ops[0])
}

func TestDispatcher_EmptyCaptureChangesNothing(t *testing.T) {
	d, ctrl, rec, logs := setup(t)
	before := ctrl.Navigator().Current()

	out := d.OnCommand(CommandAdd)
	require.NotNil(t, out.Capture)
	out = d.OnCaptureResult(capture.Result{Token: out.Capture.Token, Text: "   "})

	assert.False(t, out.Handled)
	assert.Empty(t, rec.ops)
	assert.Equal(t, before, ctrl.Navigator().Current())
	assert.Contains(t, logs.String(), "voice recognition result is empty")
}

func TestDispatcher_FailedCaptureChangesNothing(t *testing.T) {
	d, _, rec, logs := setup(t, 1)
	out := d.OnCommand(CommandEdit)
	require.NotNil(t, out.Capture)
	d.OnCaptureResult(capture.Result{Token: out.Capture.Token, Err: errors.New("mic busy")})
	assert.Empty(t, rec.ops)
	assert.Contains(t, logs.String(), "mic busy")
}

func TestDispatcher_StaleCaptureIgnored(t *testing.T) {
	d, _, rec, _ := setup(t)
	first := d.OnCommand(CommandAdd).Capture
	second := d.OnCommand(CommandAdd).Capture

	out := d.OnCaptureResult(capture.Result{Token: first.Token, Text: "old"})
	assert.False(t, out.Handled)
	assert.True(t, out.Stale)
	out = d.OnCaptureResult(capture.Result{Token: second.Token, Text: "new"})
	assert.True(t, out.Handled)
	assert.False(t, out.Stale)
	out = d.OnCaptureResult(capture.Result{Token: second.Token, Text: "dup"})
	assert.False(t, out.Handled)
	assert.True(t, out.Stale)

	third := d.OnCommand(CommandAdd).Capture
	out = d.OnCaptureResult(capture.Result{Token: third.Token, Err: errors.New("mic off")})
	assert.False(t, out.Handled)
	assert.False(t, out.Stale)
	require.Len(t, rec.ops, 1)
	assert.Equal(t, "new", rec.ops[0].Title)
}

func TestDispatcher_DeleteOnOptionPageIsNoop(t *testing.T) {
	d, ctrl, rec, _ := setup(t, 1, 2)
	ctrl.Navigator().JumpTo(0)

	out := d.OnCommand(CommandDelete)
	assert.False(t, out.Handled)
	assert.Empty(t, rec.ops)

	out = d.OnCommand(CommandEdit)
	assert.Nil(t, out.Capture)
}

func TestDispatcher_DeleteCurrentNote(t *testing.T) {
	d, ctrl, rec, _ := setup(t, 1, 2)
	require.Equal(t, 1, ctrl.Navigator().Current())
	ctrl.Navigator().Next()

	d.OnCommand(CommandDelete)
	require.Len(t, rec.ops, 1)
	assert.Equal(t, notes.Op{Kind: notes.OpDelete, ID: 2}, rec.ops[0])
}

func TestDispatcher_EditTargetsRememberedNote(t *testing.T) {
	d, ctrl, rec, _ := setup(t, 1, 2)
	out := d.OnCommand(CommandEdit)
	require.NotNil(t, out.Capture)
	assert.Equal(t, int64(1), out.Capture.NoteID)

	// navigating away before the recognizer answers does not retarget
	ctrl.Navigator().Next()
	d.OnCaptureResult(capture.Result{Token: out.Capture.Token, Text: "fixed"})
	require.Len(t, rec.ops, 1)
	assert.Equal(t, notes.Op{Kind: notes.OpUpdate, ID: 1, Title: "fixed", Body: "fixed"}, rec.ops[0])
}

func TestDispatcher_Navigation(t *testing.T) {
	d, ctrl, _, _ := setup(t, 1, 2)
	nav := ctrl.Navigator()

	d.OnCommand(CommandNext)
	assert.Equal(t, 2, nav.Current())
	d.OnGesture(gesture.SwipeForward)
	assert.Equal(t, 2, nav.Current())
	d.OnGesture(gesture.SwipeBackward)
	d.OnCommand(CommandPrevious)
	assert.Equal(t, 0, nav.Current())
	assert.True(t, d.OnGesture(gesture.SwipeBackward).Handled)
	assert.Equal(t, 0, nav.Current())
}

func TestDispatcher_SwipeDownQuits(t *testing.T) {
	d, _, _, _ := setup(t, 1)
	assert.True(t, d.OnGesture(gesture.SwipeDown).Quit)
}

func TestDispatcher_UnhandledGestures(t *testing.T) {
	d, _, rec, _ := setup(t, 1)
	// on a note page a tap has no handler
	assert.False(t, d.OnGesture(gesture.Tap).Handled)
	assert.False(t, d.OnGesture(gesture.SwipeUp).Handled)
	assert.False(t, d.OnGesture(gesture.TwoFingerTap).Handled)
	assert.Empty(t, rec.ops)
}

// End to end with the real worker and store: a voice capture becomes a
// note, the feed rebuilds the sequence and the cursor lands on it.
func TestDispatcher_WithWorker(t *testing.T) {
	ctx := context.Background()
	store := notes.NewStore(notes.NewMemoryRepository())
	feed, cancel := store.Subscribe()
	defer cancel()
	w := notes.NewWorker(ctx, store, zerolog.Nop())
	defer w.Close()

	ctrl := pager.NewController(pager.DefaultOptions())
	d := New(ctrl, w, zerolog.Nop())

	out := d.OnGesture(gesture.Tap)
	require.NotNil(t, out.Capture)
	d.OnCaptureResult(capture.Result{Token: out.Capture.Token, Text: "first"})

	select {
	case snap := <-feed:
		ctrl.Apply(snap)
	case <-time.After(2 * time.Second):
		t.Fatal("no change notification")
	}
	assert.Equal(t, 2, ctrl.Len())
	assert.Equal(t, 1, ctrl.Navigator().Current())

	d.OnCommand(CommandDelete)
	select {
	case snap := <-feed:
		ctrl.Apply(snap)
	case <-time.After(2 * time.Second):
		t.Fatal("no change notification")
	}
	assert.Equal(t, 1, ctrl.Len())
	assert.Equal(t, 0, ctrl.Navigator().Current())
}

func TestParseCommand(t *testing.T) {
	cases := map[string]Command{
		"delete":            CommandDelete,
		"OK Glass, Next":    CommandNext,
		"ok glass previous": CommandPrevious,
		"  add note ":       CommandAdd,
		"back":              CommandPrevious,
	}
	for in, want := range cases {
		got, ok := ParseCommand(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseCommand("launch rockets")
	assert.False(t, ok)
}
