package capture

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Request is one outstanding capture.
type Request struct {
	Token    string
	Purpose  Purpose
	NoteID   int64
	IssuedAt time.Time
}

// Result is what came back for a request token.
type Result struct {
	Token string
	Text  string
	Err   error
}

// Tracker holds at most one pending request. Starting a new one supersedes
// the previous; results carrying any other token are stale.
type Tracker struct {
	mu       sync.Mutex
	pending  *Request
	cancel   context.CancelFunc
	newToken func() string
	now      func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		newToken: func() string { return uuid.NewString() },
		now:      time.Now,
	}
}

// Begin issues a new request, cancelling whatever was pending.
func (t *Tracker) Begin(purpose Purpose, noteID int64) Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
	req := Request{
		Token:    t.newToken(),
		Purpose:  purpose,
		NoteID:   noteID,
		IssuedAt: t.now(),
	}
	t.pending = &req
	return req
}

// Pending returns the outstanding request, if any.
func (t *Tracker) Pending() (Request, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pending == nil {
		return Request{}, false
	}
	return *t.pending, true
}

// Resolve claims the pending request for token. It returns false when the
// token does not match (stale or duplicate result).
func (t *Tracker) Resolve(token string) (Request, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pending == nil || t.pending.Token != token {
		return Request{}, false
	}
	req := *t.pending
	t.pending = nil
	t.cancel = nil
	return req, true
}

// Cancel drops the pending request.
func (t *Tracker) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
}

// Start runs r for req on its own goroutine. The returned future is
// cancelled when the tracker moves on to another request.
func (t *Tracker) Start(ctx context.Context, r Recognizer, req Request) *Future {
	ctx, cancel := context.WithCancel(ctx)
	t.mu.Lock()
	if t.pending != nil && t.pending.Token == req.Token {
		t.cancel = cancel
	}
	t.mu.Unlock()

	f := &Future{Request: req, done: make(chan struct{}), cancel: cancel}
	go func() {
		defer close(f.done)
		defer cancel()
		text, err := r.Recognize(ctx)
		f.result = Result{Token: req.Token, Text: text, Err: err}
	}()
	return f
}

func (t *Tracker) cancelLocked() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.pending = nil
}

// Future is a capture in flight.
type Future struct {
	Request Request

	done   chan struct{}
	result Result
	cancel context.CancelFunc
}

// Done is closed once the recognizer returned.
func (f *Future) Done() <-chan struct{} { return f.done }

// Wait blocks until the result is available.
func (f *Future) Wait() Result {
	<-f.done
	return f.result
}

// Cancel asks the recognizer to stop.
func (f *Future) Cancel() { f.cancel() }
