package slideact

import (
	"io"
	"os"

	"github.com/tanema/gween/ease"
)

// EventStore is the interface for optional event forwarding (for example the
// donburi bridge in slideact/ecs). When set, every fired event is forwarded
// after the matching callback has run.
type EventStore interface {
	EmitEvent(event SliderEvent)
}

// SliderEvent carries the data of one fired event.
type SliderEvent struct {
	Type      EventType
	Offset    float64 // cursor offset when the event fired
	Ratio     float64 // position ratio when the event fired
	IsOutside bool    // EventSlideUserFailed: press landed outside the cursor
	Threshold float64 // EventCompleteAnimationStarted: ratio at release
}

// Slider is a slide-to-confirm control: a cursor dragged along a horizontal
// track that commits when released at the far end and springs back otherwise.
//
// The host routes pointer events to PointerDown, PointerMove and PointerUp and
// calls Update once per frame. A Slider is not safe for concurrent use; every
// method must be called from the host's UI goroutine.
type Slider struct {
	geom  Geometry
	pos   Position
	phase State // one of Idle, Dragging, Committing, Completed, Bouncing, Resetting

	locked  bool
	enabled bool

	thresholdMode     ThresholdMode
	graceRatio        float64
	duration          float32
	easing            ease.TweenFunc
	resetOnTap        bool
	bounceBack        bool
	animateCompletion bool
	reversed          bool

	pointer pointerState
	anim    *transition
	decor   decoration

	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner
	store       EventStore

	debug    bool
	debugOut io.Writer

	// OnSlideComplete fires once a commit lands, after the slider reports
	// IsCompleted() == true.
	OnSlideComplete func()
	// OnSlideReset fires once an animated reset lands.
	OnSlideReset func()
	// OnSlideUserFailed fires for a press outside the cursor (isOutside true),
	// a press on a locked cursor, or a grab released at the origin.
	OnSlideUserFailed func(isOutside bool)
	// OnCompleteAnimationStarted fires when a commit animation starts, with
	// the position ratio at that moment.
	OnCompleteAnimationStarted func(ratio float64)
	OnCompleteAnimationEnded   func()
	OnResetAnimationStarted    func()
	OnResetAnimationEnded      func()
	// OnSlideBump fires when a drag first brings the cursor to the far end.
	OnSlideBump func()
}

// New creates a slider from cfg. Out-of-range values are normalized as by
// Config.Validate; an unknown easing or threshold mode falls back to the
// default.
func New(cfg Config) *Slider {
	_ = cfg.Validate()
	mode, _ := cfg.thresholdMode()
	fn, err := EasingByName(cfg.Easing)
	if err != nil {
		fn = easings[defaultEasing]
	}

	s := &Slider{
		geom:              cfg.Geometry(),
		phase:             StateIdle,
		locked:            cfg.Locked,
		enabled:           cfg.Enabled,
		thresholdMode:     mode,
		graceRatio:        cfg.GraceRatio,
		duration:          cfg.AnimationDuration.Seconds(),
		easing:            fn,
		resetOnTap:        cfg.ResetOnTapWhenCompleted,
		bounceBack:        cfg.BounceBack,
		animateCompletion: cfg.AnimateCompletion,
		reversed:          cfg.Reversed,
		debug:             cfg.Debug,
		debugOut:          os.Stderr,
	}
	s.pos = s.pos.withMax(s.geom.MaxOffset())
	if cfg.Completed {
		s.completeNow()
	}
	return s
}

// --- Queries ---

// IsCompleted reports whether the slider is completed. It stays true for the
// whole of an animated reset and turns false on its final frame.
func (s *Slider) IsCompleted() bool {
	return s.phase == StateCompleted || s.phase == StateResetting
}

// IsLocked reports whether drags are rejected.
func (s *Slider) IsLocked() bool { return s.locked }

// IsEnabled reports whether pointer input is accepted at all.
func (s *Slider) IsEnabled() bool { return s.enabled }

// State returns the effective state. Disabled takes precedence, then Locked
// while the slider is at rest, then the motion phase.
func (s *Slider) State() State {
	switch {
	case !s.enabled:
		return StateDisabled
	case s.locked && s.phase == StateIdle:
		return StateLocked
	}
	return s.phase
}

// Position returns the cursor position.
func (s *Slider) Position() Position { return s.pos }

// Offset returns the cursor offset in [0, MaxOffset].
func (s *Slider) Offset() float64 { return s.pos.offset }

// PositionPercent returns the completion percentage as an integer in [0, 100].
func (s *Slider) PositionPercent() int { return s.pos.Percent() }

// DrawOffset returns the offset at which the cursor should be drawn. It equals
// Offset unless the slider is reversed, in which case it is mirrored.
func (s *Slider) DrawOffset() float64 {
	if s.reversed {
		return s.pos.max - s.pos.offset
	}
	return s.pos.offset
}

// CursorBounds returns the cursor's left and right edges in track coordinates.
func (s *Slider) CursorBounds() (left, right float64) {
	left = nonNegative(s.geom.AreaMargin) + s.DrawOffset()
	return left, left + nonNegative(s.geom.CursorWidth)
}

// Geometry returns the current track geometry.
func (s *Slider) Geometry() Geometry { return s.geom }

// IsReversed reports whether the cursor travels right to left.
func (s *Slider) IsReversed() bool { return s.reversed }

// CompletionProgress returns the progress of the decorative completion
// animation in [0, 1]. It is independent of the cursor offset.
func (s *Slider) CompletionProgress() float64 { return s.decor.progress }

// Animating reports whether an offset transition is in flight.
func (s *Slider) Animating() bool { return s.anim != nil }

// SetEventStore sets the store every fired event is forwarded to. Pass nil to
// detach.
func (s *Slider) SetEventStore(store EventStore) { s.store = store }

// --- Commands ---

// SetCompleted drives the slider to the completed or base state. With
// animate the change runs as a commit or reset transition and fires its
// events; without it the change is applied at once and fires nothing.
// Anything in flight is cancelled first and the new command starts from the
// current offset.
func (s *Slider) SetCompleted(completed, animate bool) {
	switch {
	case completed && !animate:
		if s.phase == StateCompleted {
			return
		}
		s.settle()
		s.completeNow()
	case !completed && !animate:
		s.settle()
		s.pos = s.pos.clamp(0)
		s.decor.stop(0)
		s.setPhase(StateIdle)
	case completed && animate:
		if s.phase == StateCompleted || s.phase == StateCommitting {
			return
		}
		s.settle()
		s.startCommit()
	default:
		switch s.phase {
		case StateCompleted:
			s.startReset()
		case StateResetting, StateBouncing:
		case StateIdle:
			if s.pos.offset > 0 {
				s.startBounce()
			}
		default:
			s.settle()
			s.startBounce()
		}
	}
}

// Reset starts an animated reset. It is SetCompleted(false, true).
func (s *Slider) Reset() { s.SetCompleted(false, true) }

// SetLocked toggles the lock. A locked slider accepts presses but rejects
// every drag. Anything in flight is cancelled at the current offset.
func (s *Slider) SetLocked(locked bool) {
	if s.locked == locked {
		return
	}
	s.settle()
	s.locked = locked
	s.debugf("locked=%v", locked)
}

// SetEnabled toggles pointer input. Anything in flight is cancelled at the
// current offset; re-enabling resumes from that offset.
func (s *Slider) SetEnabled(enabled bool) {
	if s.enabled == enabled {
		return
	}
	s.settle()
	s.enabled = enabled
	s.debugf("enabled=%v", enabled)
}

// SetGeometry applies a new layout. The offset is clamped into the new bounds,
// a completed slider is pinned to the new end, a drag keeps its grip, and an
// in-flight transition restarts toward its new target with its remaining time.
func (s *Slider) SetGeometry(g Geometry) {
	s.geom = g
	s.pos = s.pos.withMax(g.MaxOffset())
	switch s.phase {
	case StateCompleted:
		s.pos = s.pos.clamp(s.pos.max)
	case StateDragging:
		s.pointer.rebase(s.pos.offset, s.reversed)
	case StateCommitting, StateBouncing, StateResetting:
		s.anim.retarget(s.pos.offset, s.targetFor(s.anim.kind))
	}
	s.debugf("geometry track=%g cursor=%g margin=%g max=%g", g.TrackWidth, g.CursorWidth, g.AreaMargin, s.pos.max)
}

// Update advances the slider by dt seconds: it consumes at most one injected
// pointer event, steps the in-flight transition and the decorative completion
// animation. Call it once per frame.
func (s *Slider) Update(dt float32) {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInjectedInput()
	s.stepTransition(dt)
	s.decor.update(dt)
}

// --- Internal state changes ---

// setPhase is the only writer of s.phase.
func (s *Slider) setPhase(p State) {
	if s.phase == p {
		return
	}
	s.debugf("%s -> %s (offset %.2f)", s.phase, p, s.pos.offset)
	s.phase = p
}

// settle stops any gesture or transition in flight, leaving the cursor where
// it is. The slider comes to rest in the idle phase unless it was completed.
func (s *Slider) settle() {
	switch s.phase {
	case StateDragging:
		s.pointer.release()
		s.setPhase(StateIdle)
	case StateCommitting, StateBouncing, StateResetting:
		s.anim = nil
		s.setPhase(StateIdle)
	}
}

// completeNow jumps to the completed state without animation or events.
func (s *Slider) completeNow() {
	s.pos = s.pos.clamp(s.pos.max)
	s.decor.stop(1)
	s.setPhase(StateCompleted)
}

// --- Event dispatch ---

func (s *Slider) event(t EventType) SliderEvent {
	return SliderEvent{Type: t, Offset: s.pos.offset, Ratio: s.pos.Ratio()}
}

func (s *Slider) fire(ev SliderEvent) {
	s.debugEvent(ev)
	switch ev.Type {
	case EventSlideComplete:
		if s.OnSlideComplete != nil {
			s.OnSlideComplete()
		}
	case EventSlideReset:
		if s.OnSlideReset != nil {
			s.OnSlideReset()
		}
	case EventSlideUserFailed:
		if s.OnSlideUserFailed != nil {
			s.OnSlideUserFailed(ev.IsOutside)
		}
	case EventCompleteAnimationStarted:
		if s.OnCompleteAnimationStarted != nil {
			s.OnCompleteAnimationStarted(ev.Threshold)
		}
	case EventCompleteAnimationEnded:
		if s.OnCompleteAnimationEnded != nil {
			s.OnCompleteAnimationEnded()
		}
	case EventResetAnimationStarted:
		if s.OnResetAnimationStarted != nil {
			s.OnResetAnimationStarted()
		}
	case EventResetAnimationEnded:
		if s.OnResetAnimationEnded != nil {
			s.OnResetAnimationEnded()
		}
	case EventSlideBump:
		if s.OnSlideBump != nil {
			s.OnSlideBump()
		}
	}
	if s.store != nil {
		s.store.EmitEvent(ev)
	}
}

func (s *Slider) fireUserFailed(isOutside bool) {
	ev := s.event(EventSlideUserFailed)
	ev.IsOutside = isOutside
	s.fire(ev)
}
