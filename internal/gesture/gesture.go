package gesture

import (
	"math"
	"time"
)

// Gesture is one classified touch interaction.
type Gesture int

const (
	None Gesture = iota
	Tap
	TwoFingerTap
	SwipeForward
	TwoFingerSwipeForward
	SwipeBackward
	TwoFingerSwipeBackward
	SwipeUp
	TwoFingerSwipeUp
	SwipeDown
	TwoFingerSwipeDown
)

var gestureNames = map[Gesture]string{
	None:                   "NONE",
	Tap:                    "TAP",
	TwoFingerTap:           "TWO_FINGER_TAP",
	SwipeForward:           "SWIPE_FORWARD",
	TwoFingerSwipeForward:  "TWO_FINGER_SWIPE_FORWARD",
	SwipeBackward:          "SWIPE_BACKWARD",
	TwoFingerSwipeBackward: "TWO_FINGER_SWIPE_BACKWARD",
	SwipeUp:                "SWIPE_UP",
	TwoFingerSwipeUp:       "TWO_FINGER_SWIPE_UP",
	SwipeDown:              "SWIPE_DOWN",
	TwoFingerSwipeDown:     "TWO_FINGER_SWIPE_DOWN",
}

func (g Gesture) String() string {
	if s, ok := gestureNames[g]; ok {
		return s
	}
	return "UNKNOWN"
}

// Action is the kind of a raw motion sample.
type Action int

const (
	ActionDown Action = iota
	ActionPointerDown
	ActionMove
	ActionUp
	ActionCancel
)

// Point is a pointer position in pixels.
type Point struct {
	X, Y float64
}

// Sample is one raw motion event. Pointers[0] is the first finger,
// Pointers[1] (when present) the second.
type Sample struct {
	Action   Action
	Pointers []Point
	Time     time.Time
}

// Listener receives classified gestures. It reports whether the gesture was
// consumed.
type Listener interface {
	OnGesture(g Gesture) bool
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(g Gesture) bool

func (f ListenerFunc) OnGesture(g Gesture) bool { return f(g) }

// Thresholds tune classification. Distances are pixels, velocity is pixels
// per second.
type Thresholds struct {
	TouchSlop     float64
	SwipeDistance float64
	SwipeVelocity float64
}

const (
	defaultTouchSlop     = 8
	defaultSwipeDistance = 100
	defaultSwipeVelocity = 100

	// velocity is measured over the trailing part of the interaction
	velocityWindow = 100 * time.Millisecond
)

// tan(60°): displacement steeper than this is vertical.
var tanAngle = math.Tan(60 * math.Pi / 180)

// DefaultThresholds returns the values the head-worn touchpad ships with.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TouchSlop:     defaultTouchSlop,
		SwipeDistance: defaultSwipeDistance,
		SwipeVelocity: defaultSwipeVelocity,
	}
}

func (t Thresholds) withDefaults() Thresholds {
	d := DefaultThresholds()
	if t.TouchSlop <= 0 {
		t.TouchSlop = d.TouchSlop
	}
	if t.SwipeDistance <= 0 {
		t.SwipeDistance = d.SwipeDistance
	}
	if t.SwipeVelocity <= 0 {
		t.SwipeVelocity = d.SwipeVelocity
	}
	return t
}
