package notes

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const subscriberBuffer = 16

// Store is the authoritative note collection. Mutations are serialized and
// every one of them pushes a fresh Snapshot to all subscribers, in the
// order the mutations were applied.
type Store struct {
	repo Repository
	now  func() time.Time
	log  zerolog.Logger

	// mu serializes writers and snapshot publication.
	mu     sync.Mutex
	seq    uint64
	last   []Note
	subMu  sync.Mutex
	subs   map[int]chan Snapshot
	nextID int
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger attaches a logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

func NewStore(repo Repository, opts ...Option) *Store {
	s := &Store{
		repo: repo,
		now:  time.Now,
		log:  zerolog.Nop(),
		subs: make(map[int]chan Snapshot),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Insert appends a new note stamped with the current time.
func (s *Store) Insert(ctx context.Context, title, body string) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.repo.Insert(ctx, Note{
		Title:     strings.TrimSpace(title),
		Body:      strings.TrimSpace(body),
		CreatedAt: s.now().Format(TimeLayout),
	})
	if err != nil {
		return Note{}, err
	}
	s.log.Debug().Int64("id", n.ID).Msg("note inserted")
	s.publishLocked(ctx, Event{Type: EventCreate, ID: n.ID})
	return n, nil
}

// Update replaces title and body of an existing note. ID, creation time and
// position are kept.
func (s *Store) Update(ctx context.Context, id int64, title, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.repo.Update(ctx, Note{ID: id, Title: strings.TrimSpace(title), Body: strings.TrimSpace(body)})
	if err != nil {
		return err
	}
	s.log.Debug().Int64("id", id).Msg("note updated")
	s.publishLocked(ctx, Event{Type: EventModify, ID: id})
	return nil
}

// Delete removes a note permanently.
func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Debug().Int64("id", id).Msg("note deleted")
	s.publishLocked(ctx, Event{Type: EventDelete, ID: id})
	return nil
}

// List returns the current collection.
func (s *Store) List(ctx context.Context) ([]Note, error) {
	return s.repo.List(ctx)
}

// Reload re-reads the repository and publishes a snapshot when the
// contents differ from the last one published (or none was published yet).
// It picks up writes made by other processes.
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	if s.seq > 0 && slices.Equal(list, s.last) {
		return nil
	}
	s.emitLocked(Event{Type: EventReload}, list)
	return nil
}

// Subscribe registers a change feed. The latest snapshot, if any, is
// delivered immediately. A slow subscriber loses intermediate snapshots,
// never the newest one. Call cancel to unsubscribe; it closes the channel.
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Snapshot, subscriberBuffer)
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.subMu.Unlock()

	if s.seq > 0 {
		ch <- s.snapshotLocked(Event{Type: EventReload})
	}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (s *Store) publishLocked(ctx context.Context, ev Event) {
	list, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("event", string(ev.Type)).Msg("snapshot after mutation failed")
		return
	}
	s.emitLocked(ev, list)
}

func (s *Store) emitLocked(ev Event, list []Note) {
	s.seq++
	s.last = list
	snap := s.snapshotLocked(ev)

	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		deliver(ch, snap)
	}
}

func (s *Store) snapshotLocked(ev Event) Snapshot {
	cp := make([]Note, len(s.last))
	copy(cp, s.last)
	return Snapshot{Seq: s.seq, Event: ev, Notes: cp}
}

// deliver never blocks: when the buffer is full the oldest snapshot is
// dropped. Snapshots carry the whole collection so only the newest matters.
func deliver(ch chan Snapshot, snap Snapshot) {
	for {
		select {
		case ch <- snap:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
