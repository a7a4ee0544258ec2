package pager

// Navigator is the cursor over a Controller's sequence. The index stays in
// [0, Len()-1]; moves past either end are silently ignored.
type Navigator struct {
	seq     *Controller
	current int
	// moved is set by the first explicit navigation. Until then the cursor
	// jumps to the first note as soon as one exists.
	moved        bool
	onTransition func(from, to int)
}

func newNavigator(c *Controller) *Navigator { return &Navigator{seq: c} }

// OnTransition registers a hook fired after every page change made by
// Next, Previous or JumpTo.
func (n *Navigator) OnTransition(f func(from, to int)) { n.onTransition = f }

func (n *Navigator) Current() int { return n.current }

// Next moves one page forward. It reports whether the cursor moved.
func (n *Navigator) Next() bool {
	if n.current >= n.seq.Len()-1 {
		return false
	}
	n.move(n.current + 1)
	return true
}

// Previous moves one page back. It reports whether the cursor moved.
func (n *Navigator) Previous() bool {
	if n.current <= 0 {
		return false
	}
	n.move(n.current - 1)
	return true
}

// JumpTo moves to index i if it is in range.
func (n *Navigator) JumpTo(i int) bool {
	if i < 0 || i >= n.seq.Len() || i == n.current {
		return false
	}
	n.move(i)
	return true
}

func (n *Navigator) move(to int) {
	from := n.current
	n.current = to
	n.moved = true
	if n.onTransition != nil {
		n.onTransition(from, to)
	}
}

// sync reclamps after the sequence changed.
func (n *Navigator) sync() {
	first := n.seq.OptionCount()
	if !n.moved && n.seq.NoteCount() > 0 && n.current < first {
		n.current = first
	}
	if last := n.seq.Len() - 1; n.current > last {
		n.current = last
	}
	if n.current < 0 {
		n.current = 0
	}
}
