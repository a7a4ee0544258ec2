package notes

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// OpKind names a queued mutation.
type OpKind string

const (
	OpInsert OpKind = "insert"
	OpUpdate OpKind = "update"
	OpDelete OpKind = "delete"
)

// Op is a mutation handed to the Worker.
type Op struct {
	Kind  OpKind
	ID    int64
	Title string
	Body  string
}

// Result reports the outcome of one Op.
type Result struct {
	Op   Op
	Note Note
	Err  error
}

// ErrWorkerClosed is returned by Submit after Close.
var ErrWorkerClosed = errors.New("note worker closed")

const workerQueue = 64

// Worker applies mutations on a single goroutine, first in first out, so
// the interactive loop never blocks on storage. Their effects arrive through
// the Store's change feed; Results carries per-op outcomes.
type Worker struct {
	store *Store
	log   zerolog.Logger

	jobs    chan Op
	results chan Result
	done    chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewWorker starts the worker goroutine. It runs until Close is called.
func NewWorker(ctx context.Context, store *Store, log zerolog.Logger) *Worker {
	w := &Worker{
		store:   store,
		log:     log,
		jobs:    make(chan Op, workerQueue),
		results: make(chan Result, workerQueue),
		done:    make(chan struct{}),
	}
	go w.run(ctx)
	return w
}

// Submit queues op. It blocks only when the queue is full.
func (w *Worker) Submit(op Op) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWorkerClosed
	}
	w.jobs <- op
	return nil
}

// Results is the per-op outcome feed. It is closed once the worker stops.
func (w *Worker) Results() <-chan Result { return w.results }

// Close stops accepting work, drains the queue and waits for the goroutine.
func (w *Worker) Close() {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.jobs)
	}
	w.mu.Unlock()
	<-w.done
}

func (w *Worker) run(ctx context.Context) {
	defer close(w.done)
	defer close(w.results)
	for op := range w.jobs {
		res := w.apply(ctx, op)
		if res.Err != nil {
			w.log.Warn().Err(res.Err).Str("op", string(op.Kind)).Int64("id", op.ID).Msg("note mutation failed")
		}
		select {
		case w.results <- res:
		default:
			w.log.Debug().Str("op", string(op.Kind)).Msg("result dropped, nobody listening")
		}
	}
}

func (w *Worker) apply(ctx context.Context, op Op) Result {
	res := Result{Op: op}
	switch op.Kind {
	case OpInsert:
		res.Note, res.Err = w.store.Insert(ctx, op.Title, op.Body)
	case OpUpdate:
		res.Err = w.store.Update(ctx, op.ID, op.Title, op.Body)
	case OpDelete:
		res.Err = w.store.Delete(ctx, op.ID)
	default:
		res.Err = errors.New("unknown op " + string(op.Kind))
	}
	return res
}
