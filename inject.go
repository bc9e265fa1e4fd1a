package slideact

// pointerAction is the kind of an injected pointer event.
type pointerAction uint8

const (
	actionPress pointerAction = iota
	actionMove
	actionRelease
)

// syntheticPointerEvent is a single injected pointer event in track
// coordinates.
type syntheticPointerEvent struct {
	action pointerAction
	x      float64
}

// InjectPress queues a press at x. Injected events are consumed one per
// Update call, before the transition is stepped, exactly as if the host had
// delivered them on that frame.
func (s *Slider) InjectPress(x float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{action: actionPress, x: x})
}

// InjectMove queues a move to x. Use between InjectPress and InjectRelease to
// simulate a drag.
func (s *Slider) InjectMove(x float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{action: actionMove, x: x})
}

// InjectRelease queues a release at the last known pointer position.
func (s *Slider) InjectRelease() {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{action: actionRelease})
}

// InjectClick queues a press followed by a release at x. Consumes two frames.
func (s *Slider) InjectClick(x float64) {
	s.InjectPress(x)
	s.InjectRelease()
}

// InjectDrag queues a full drag: press at fromX, frames-2 linearly
// interpolated moves, a final move to toX and a release. The sequence
// consumes frames+1 frames. Minimum frames is 2.
func (s *Slider) InjectDrag(fromX, toX float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX + (toX-fromX)*t)
	}
	s.InjectMove(toX)
	s.InjectRelease()
}

// PendingInput reports how many injected events are still queued.
func (s *Slider) PendingInput() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and delivers it.
// Returns true if an event was consumed.
func (s *Slider) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.action {
	case actionPress:
		s.PointerDown(evt.x)
	case actionMove:
		s.PointerMove(evt.x)
	case actionRelease:
		s.PointerUp()
	}
	return true
}
