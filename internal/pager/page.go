// Package pager keeps the swipeable page sequence (fixed option pages
// followed by the live notes) and the cursor that navigates it.
package pager

import "github.com/ramanasai/glassnotes/internal/notes"

// Kind tags a Page.
type Kind int

const (
	KindOption Kind = iota
	KindNote
)

func (k Kind) String() string {
	if k == KindNote {
		return "note"
	}
	return "option"
}

// Option is a fixed pseudo-page at the head of the sequence.
type Option struct {
	Name  string
	Label string
	Icon  string
}

// AddNote is the "add a note" option page.
var AddNote = Option{Name: "add", Label: "Add a note", Icon: "+"}

// DefaultOptions is the option list of the notes pager.
func DefaultOptions() []Option { return []Option{AddNote} }

// Page is one entry of the sequence: either an Option or a Note.
type Page struct {
	Kind   Kind
	Option Option
	Note   notes.Note
}

func OptionPage(o Option) Page { return Page{Kind: KindOption, Option: o} }

func NotePage(n notes.Note) Page { return Page{Kind: KindNote, Note: n} }

func (p Page) IsNote() bool { return p.Kind == KindNote }
