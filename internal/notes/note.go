package notes

import "errors"

// TimeLayout is the short date/time format notes are stamped with.
const TimeLayout = "1/2/06, 3:04 PM"

// ErrNotFound is returned when a mutation references an absent note.
var ErrNotFound = errors.New("note not found")

// Note is a single captured note. IDs are assigned by the repository.
type Note struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

// EventType is the kind of change that produced a snapshot.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
	EventReload EventType = "RELOAD"
)

// Event describes one change to the collection.
type Event struct {
	Type EventType
	ID   int64
}

// Snapshot is the full collection after a change, in insertion order.
// Seq increases by one for every published snapshot.
type Snapshot struct {
	Seq   uint64
	Event Event
	Notes []Note
}
