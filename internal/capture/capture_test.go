package capture

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	got, err := Normalize("  buy milk\n")
	require.NoError(t, err)
	assert.Equal(t, "buy milk", got)

	for _, in := range []string{"", "   ", "\x00\x07", "\n\t"} {
		_, err := Normalize(in)
		assert.ErrorIs(t, err, ErrEmptyCapture, "input %q", in)
	}
}

func TestTracker_StaleTokensAreRejected(t *testing.T) {
	tr := NewTracker()
	first := tr.Begin(PurposeCreate, 0)
	second := tr.Begin(PurposeEdit, 42)
	assert.NotEqual(t, first.Token, second.Token)

	_, ok := tr.Resolve(first.Token)
	assert.False(t, ok, "superseded request")

	req, ok := tr.Resolve(second.Token)
	require.True(t, ok)
	assert.Equal(t, PurposeEdit, req.Purpose)
	assert.Equal(t, int64(42), req.NoteID)

	_, ok = tr.Resolve(second.Token)
	assert.False(t, ok, "duplicate delivery")
}

func TestTracker_CancelDropsPending(t *testing.T) {
	tr := NewTracker()
	req := tr.Begin(PurposeCreate, 0)
	tr.Cancel()
	_, ok := tr.Pending()
	assert.False(t, ok)
	_, ok = tr.Resolve(req.Token)
	assert.False(t, ok)
}

func TestTracker_StartCancelsSupersededFuture(t *testing.T) {
	tr := NewTracker()
	blocking := RecognizerFunc(func(ctx context.Context) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})

	req := tr.Begin(PurposeCreate, 0)
	f := tr.Start(context.Background(), blocking, req)
	tr.Begin(PurposeCreate, 0)

	select {
	case <-f.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("superseded capture was not cancelled")
	}
	res := f.Wait()
	assert.Equal(t, req.Token, res.Token)
	assert.True(t, errors.Is(res.Err, context.Canceled))
}

func TestTracker_StartDeliversText(t *testing.T) {
	tr := NewTracker()
	req := tr.Begin(PurposeCreate, 0)
	res := tr.Start(context.Background(), Static("hello glass"), req).Wait()
	assert.Equal(t, Result{Token: req.Token, Text: "hello glass"}, res)
}

func TestCommand_Recognize(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
	got, err := Command{Argv: []string{"sh", "-c", "printf 'remember the keys\\nsecond line'"}}.Recognize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "remember the keys", got)

	_, err = Command{Argv: []string{"sh", "-c", "echo nope >&2; exit 3"}}.Recognize(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")

	_, err = Command{}.Recognize(context.Background())
	assert.Error(t, err)
}
