package slideact

import "math"

// Geometry describes the track a Slider runs along, in layout units.
// It is immutable per layout pass; call Slider.SetGeometry when it changes.
type Geometry struct {
	TrackWidth  float64
	CursorWidth float64
	AreaMargin  float64 // gap kept between the cursor and both track ends
}

// MaxOffset returns the largest offset the cursor can reach. Geometry where the
// cursor plus margins is wider than the track yields 0, never a negative value.
func (g Geometry) MaxOffset() float64 {
	m := nonNegative(g.TrackWidth) - nonNegative(g.CursorWidth) - 2*nonNegative(g.AreaMargin)
	if m < 0 {
		return 0
	}
	return m
}

// nonNegative maps negative and NaN values to 0.
func nonNegative(v float64) float64 {
	if v > 0 {
		return v
	}
	return 0
}

// Position is the cursor's offset along the track together with the bound it
// is clamped to. The zero value is a cursor at the origin of an empty track.
type Position struct {
	offset float64
	max    float64
}

// Offset returns the cursor's displacement from the track origin.
func (p Position) Offset() float64 { return p.offset }

// Max returns the largest reachable offset.
func (p Position) Max() float64 { return p.max }

// Ratio returns offset/max in [0, 1]. An empty track reports 0.
func (p Position) Ratio() float64 {
	if p.max <= 0 {
		return 0
	}
	return p.offset / p.max
}

// Percent returns Ratio scaled to an integer in [0, 100], rounded down.
func (p Position) Percent() int {
	return int(math.Floor(p.Ratio()*100 + 1e-9))
}

// AtEnd reports whether the cursor touches the far end of a non-empty track.
func (p Position) AtEnd() bool {
	return p.max > 0 && p.offset >= p.max
}

// clamp returns a copy of p with offset v clamped into [0, max].
func (p Position) clamp(v float64) Position {
	switch {
	case math.IsNaN(v) || v < 0:
		v = 0
	case v > p.max:
		v = p.max
	}
	p.offset = v
	return p
}

// withMax returns a copy of p with a new bound, clamping the offset into it.
func (p Position) withMax(max float64) Position {
	p.max = nonNegative(max)
	return p.clamp(p.offset)
}

// State is the effective state of a Slider as seen from outside.
type State uint8

const (
	StateIdle       State = iota // at rest, awaiting input
	StateDragging                // pointer captured, offset tracks the pointer
	StateCommitting              // released past threshold, animating to the end
	StateCompleted               // at the end, completed
	StateBouncing                // released before threshold, animating to the origin
	StateResetting               // animating from completed back to the origin
	StateLocked                  // accepts presses but rejects every drag
	StateDisabled                // ignores pointer input entirely
)

var stateNames = [...]string{
	StateIdle:       "idle",
	StateDragging:   "dragging",
	StateCommitting: "committing",
	StateCompleted:  "completed",
	StateBouncing:   "bouncing",
	StateResetting:  "resetting",
	StateLocked:     "locked",
	StateDisabled:   "disabled",
}

// String returns the lower-case name of the state.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// ThresholdMode selects how a release decides between commit and bounce.
type ThresholdMode uint8

const (
	ThresholdEdge  ThresholdMode = iota // commit when the cursor touches the far end (default)
	ThresholdRatio                      // commit when the position ratio reaches GraceRatio
)

// EventType identifies a kind of slider event.
type EventType uint8

const (
	EventSlideComplete             EventType = iota // completion committed
	EventSlideReset                                 // animated reset finished
	EventSlideUserFailed                            // press outside the cursor, on a locked cursor, or released at the origin
	EventCompleteAnimationStarted                   // commit animation started
	EventCompleteAnimationEnded                     // commit animation finished
	EventResetAnimationStarted                      // reset animation started
	EventResetAnimationEnded                        // reset animation finished
	EventSlideBump                                  // a drag reached the far end
)

var eventNames = [...]string{
	EventSlideComplete:            "slide-complete",
	EventSlideReset:               "slide-reset",
	EventSlideUserFailed:          "slide-user-failed",
	EventCompleteAnimationStarted: "complete-animation-started",
	EventCompleteAnimationEnded:   "complete-animation-ended",
	EventResetAnimationStarted:    "reset-animation-started",
	EventResetAnimationEnded:      "reset-animation-ended",
	EventSlideBump:                "slide-bump",
}

func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}
