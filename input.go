package slideact

import "math"

// Span is a horizontal hit interval in track coordinates.
type Span struct {
	X, Width float64
}

// Contains reports whether x lies inside the span. Edges are inside.
func (r Span) Contains(x float64) bool {
	return x >= r.X && x <= r.X+r.Width
}

// CursorSpan returns the cursor's current hit interval.
func (s *Slider) CursorSpan() Span {
	left, right := s.CursorBounds()
	return Span{X: left, Width: right - left}
}

// --- Pointer state ---

// pointerState is the captured pointer of the current drag.
type pointerState struct {
	down   bool
	startX float64
	lastX  float64
	anchor float64 // pointer x minus offset (plus offset when reversed)
}

// capture grabs the pointer at x with the cursor at offset.
func (p *pointerState) capture(x, offset float64, reversed bool) {
	p.down = true
	p.startX = x
	p.lastX = x
	p.rebase(offset, reversed)
}

// rebase recomputes the anchor so the cursor stays under the last known
// pointer position at the given offset.
func (p *pointerState) rebase(offset float64, reversed bool) {
	if reversed {
		p.anchor = p.lastX + offset
	} else {
		p.anchor = p.lastX - offset
	}
}

// offsetAt maps a pointer x to an unclamped offset.
func (p *pointerState) offsetAt(x float64, reversed bool) float64 {
	if reversed {
		return p.anchor - x
	}
	return x - p.anchor
}

func (p *pointerState) release() {
	*p = pointerState{}
}

// --- Pointer events ---

// PointerDown handles a press at x along the track.
//
// A disabled slider ignores it. A completed or resetting slider ignores it
// unless reset-on-tap is configured, in which case a completed slider starts
// an animated reset. A press outside the cursor reports a failed slide with
// isOutside set and leaves any animation running. A press on a locked cursor
// reports a failed slide with isOutside unset. Otherwise the press grabs the
// cursor, cancelling a bounce or commit in flight at the current offset.
func (s *Slider) PointerDown(x float64) {
	if !s.enabled {
		return
	}
	switch s.phase {
	case StateCompleted:
		if s.resetOnTap {
			s.startReset()
		}
		return
	case StateResetting:
		return
	case StateDragging:
		// A second press without a release; the host lost the up event.
		s.pointer.lastX = x
		return
	}
	if math.IsNaN(x) {
		return
	}
	if !s.CursorSpan().Contains(x) {
		s.fireUserFailed(true)
		return
	}
	if s.locked {
		s.fireUserFailed(false)
		return
	}
	s.settle()
	s.pointer.capture(x, s.pos.offset, s.reversed)
	s.setPhase(StateDragging)
}

// PointerMove handles the captured pointer moving to x. It is a no-op unless
// a drag is in progress. The offset is clamped to the track, so x may lie
// anywhere, including outside the host view.
func (s *Slider) PointerMove(x float64) {
	if s.phase != StateDragging || math.IsNaN(x) {
		return
	}
	s.pointer.lastX = x
	wasAtEnd := s.pos.AtEnd()
	s.pos = s.pos.clamp(s.pointer.offsetAt(x, s.reversed))
	if !wasAtEnd && s.pos.AtEnd() {
		s.fire(s.event(EventSlideBump))
	}
}

// PointerUp releases the captured pointer at its last known position. It is a
// no-op unless a drag is in progress. A release at the threshold commits;
// anything short of it bounces back to the origin (or stays put when
// bounce-back is off). A grab released at the origin also reports a failed
// slide with isOutside unset.
func (s *Slider) PointerUp() {
	if s.phase != StateDragging {
		return
	}
	s.pointer.release()
	if s.reachedThreshold() {
		s.startCommit()
		return
	}
	atOrigin := s.pos.offset == 0
	if s.bounceBack {
		s.startBounce()
	} else {
		s.setPhase(StateIdle)
	}
	if atOrigin {
		s.fireUserFailed(false)
	}
}

// reachedThreshold reports whether a release at the current offset commits.
// An empty track never commits.
func (s *Slider) reachedThreshold() bool {
	if s.pos.max <= 0 {
		return false
	}
	if s.thresholdMode == ThresholdRatio {
		return s.pos.Ratio() >= s.graceRatio
	}
	return s.pos.offset >= s.pos.max
}

// Threshold returns the offset at or beyond which a release commits.
func (s *Slider) Threshold() float64 {
	if s.thresholdMode == ThresholdRatio {
		return s.pos.max * s.graceRatio
	}
	return s.pos.max
}
