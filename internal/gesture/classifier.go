package gesture

import (
	"math"
	"time"
)

type timedPoint struct {
	p Point
	t time.Time
}

// Classifier turns the samples of one touch interaction into a Gesture.
// It keeps no history between interactions and is not safe for concurrent
// use; feed it from the input loop only.
type Classifier struct {
	th       Thresholds
	listener Listener

	down        bool
	inTapRegion bool
	twoFinger   bool

	firstDown  Point
	secondDown Point
	firstDist  Point
	secondDist Point
	history    []timedPoint
}

// NewClassifier builds a classifier that reports to l. A nil listener is
// allowed; OnSample then only reports whether a gesture was recognized.
func NewClassifier(th Thresholds, l Listener) *Classifier {
	return &Classifier{th: th.withDefaults(), listener: l}
}

// SetListener replaces the gesture listener.
func (c *Classifier) SetListener(l Listener) { c.listener = l }

// OnSample consumes one sample. On release it classifies the interaction,
// calls the listener synchronously and returns what the listener returned.
func (c *Classifier) OnSample(s Sample) bool {
	switch s.Action {
	case ActionDown:
		if len(s.Pointers) == 0 {
			return false
		}
		c.reset()
		c.down = true
		c.inTapRegion = true
		c.firstDown = s.Pointers[0]
		c.history = append(c.history, timedPoint{p: s.Pointers[0], t: s.Time})
	case ActionPointerDown:
		if !c.down || len(s.Pointers) == 0 {
			return false
		}
		c.twoFinger = true
		c.secondDown = s.Pointers[len(s.Pointers)-1]
	case ActionMove:
		if !c.down {
			return false
		}
		c.track(s)
	case ActionUp:
		if !c.down {
			return false
		}
		c.track(s)
		g := c.classify()
		c.reset()
		if g == None {
			return false
		}
		if c.listener == nil {
			return true
		}
		return c.listener.OnGesture(g)
	case ActionCancel:
		c.reset()
	}
	return false
}

// Classify runs a complete interaction through a fresh classifier and
// returns the result, or None when the motion was ambiguous.
func Classify(th Thresholds, samples []Sample) Gesture {
	got := None
	c := NewClassifier(th, ListenerFunc(func(g Gesture) bool {
		got = g
		return true
	}))
	for _, s := range samples {
		c.OnSample(s)
	}
	return got
}

func (c *Classifier) reset() {
	c.down = false
	c.inTapRegion = false
	c.twoFinger = false
	c.firstDist = Point{}
	c.secondDist = Point{}
	c.history = c.history[:0]
}

func (c *Classifier) track(s Sample) {
	if len(s.Pointers) == 0 {
		return
	}
	p := s.Pointers[0]
	c.firstDist = Point{X: p.X - c.firstDown.X, Y: p.Y - c.firstDown.Y}
	if c.twoFinger && len(s.Pointers) > 1 {
		q := s.Pointers[1]
		c.secondDist = Point{X: q.X - c.secondDown.X, Y: q.Y - c.secondDown.Y}
	}
	if c.inTapRegion {
		slop := c.th.TouchSlop * c.th.TouchSlop
		if sq(c.firstDist) > slop || sq(c.secondDist) > slop {
			c.inTapRegion = false
		}
	}
	c.history = append(c.history, timedPoint{p: p, t: s.Time})
}

// velocity of the first finger over the trailing window. An interaction
// with no measurable duration counts as infinitely fast.
func (c *Classifier) velocity() (vx, vy float64) {
	if len(c.history) < 2 {
		return math.Inf(1), math.Inf(1)
	}
	last := c.history[len(c.history)-1]
	cutoff := last.t.Add(-velocityWindow)
	ref := c.history[0]
	for _, h := range c.history {
		if !h.t.After(cutoff) {
			ref = h
		}
	}
	dt := last.t.Sub(ref.t).Seconds()
	if dt <= 0 {
		return math.Inf(1), math.Inf(1)
	}
	return (last.p.X - ref.p.X) / dt, (last.p.Y - ref.p.Y) / dt
}

func (c *Classifier) classify() Gesture {
	vx, vy := c.velocity()
	tan := slope(c.firstDist)
	if c.twoFinger {
		return c.classifyTwoFinger(tan, slope(c.secondDist), vx, vy)
	}
	return c.classifyOneFinger(tan, vx, vy)
}

func (c *Classifier) classifyOneFinger(tan, vx, vy float64) Gesture {
	d := c.firstDist
	if tan > tanAngle {
		switch {
		case math.Abs(d.Y) < c.th.SwipeDistance || math.Abs(vy) < c.th.SwipeVelocity:
			return c.tapOrNone(Tap)
		case d.Y < 0:
			return SwipeUp
		case d.Y > 0:
			return SwipeDown
		}
		return None
	}
	switch {
	case math.Abs(d.X) < c.th.SwipeDistance || math.Abs(vx) < c.th.SwipeVelocity:
		return c.tapOrNone(Tap)
	case d.X < 0:
		return SwipeForward
	case d.X > 0:
		return SwipeBackward
	}
	return None
}

func (c *Classifier) classifyTwoFinger(tan, tanSecond, vx, vy float64) Gesture {
	d, e := c.firstDist, c.secondDist
	if tan > tanAngle && tanSecond > tanAngle {
		switch {
		case math.Abs(d.Y) < c.th.SwipeDistance || math.Abs(vy) < c.th.SwipeVelocity:
			return c.tapOrNone(TwoFingerTap)
		case d.Y < 0 && e.Y < 0:
			return TwoFingerSwipeUp
		case d.Y > 0 && e.Y > 0:
			return TwoFingerSwipeDown
		}
		return None
	}
	switch {
	case math.Abs(d.X) < c.th.SwipeDistance || math.Abs(vx) < c.th.SwipeVelocity:
		return c.tapOrNone(TwoFingerTap)
	case d.X < 0 && e.X < 0:
		return TwoFingerSwipeForward
	case d.X > 0 && e.X > 0:
		return TwoFingerSwipeBackward
	}
	return None
}

func (c *Classifier) tapOrNone(tap Gesture) Gesture {
	if c.inTapRegion {
		return tap
	}
	return None
}

func slope(d Point) float64 {
	if d.X == 0 {
		return math.MaxFloat64
	}
	return math.Abs(d.Y / d.X)
}

func sq(p Point) float64 { return p.X*p.X + p.Y*p.Y }
