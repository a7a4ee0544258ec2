package pager

import "github.com/ramanasai/glassnotes/internal/notes"

// Controller maintains the page sequence: option pages first, then the
// store's latest snapshot in order. Rebuilding reclamps the Navigator.
// Not safe for concurrent use; it lives on the interactive loop.
type Controller struct {
	options []Option
	notes   []notes.Note
	lastSeq uint64
	nav     *Navigator
}

// NewController builds a controller with the given option pages and no
// notes. The navigator starts on the first option.
func NewController(options []Option) *Controller {
	c := &Controller{options: append([]Option(nil), options...)}
	c.nav = newNavigator(c)
	return c
}

// Navigator returns the cursor bound to this sequence.
func (c *Controller) Navigator() *Navigator { return c.nav }

// Apply rebuilds from a store snapshot. Snapshots older than the last
// applied one are ignored.
func (c *Controller) Apply(s notes.Snapshot) {
	if s.Seq != 0 && s.Seq <= c.lastSeq {
		return
	}
	c.lastSeq = s.Seq
	c.Rebuild(s.Notes)
}

// Rebuild replaces the note part of the sequence and reclamps the cursor.
func (c *Controller) Rebuild(list []notes.Note) {
	c.notes = append(c.notes[:0:0], list...)
	c.nav.sync()
}

// Len is OptionCount plus the number of notes.
func (c *Controller) Len() int { return len(c.options) + len(c.notes) }

func (c *Controller) OptionCount() int { return len(c.options) }

func (c *Controller) NoteCount() int { return len(c.notes) }

// At returns the page at index i.
func (c *Controller) At(i int) (Page, bool) {
	switch {
	case i < 0 || i >= c.Len():
		return Page{}, false
	case i < len(c.options):
		return OptionPage(c.options[i]), true
	default:
		return NotePage(c.notes[i-len(c.options)]), true
	}
}

// Current is the page under the cursor.
func (c *Controller) Current() (Page, bool) { return c.At(c.nav.Current()) }

// IndexOfNote returns the sequence position of the note with id, or -1.
func (c *Controller) IndexOfNote(id int64) int {
	for i, n := range c.notes {
		if n.ID == id {
			return len(c.options) + i
		}
	}
	return -1
}
