package slideact

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// transitionKind names the three offset animations.
type transitionKind uint8

const (
	transitionCommit transitionKind = iota // current offset -> max, then completed
	transitionBounce                       // current offset -> 0, then idle
	transitionReset                        // completed -> 0, then idle
)

func (k transitionKind) String() string {
	switch k {
	case transitionCommit:
		return "commit"
	case transitionBounce:
		return "bounce"
	case transitionReset:
		return "reset"
	}
	return "unknown"
}

// transition interpolates the cursor offset from one value to another. It
// tracks elapsed time itself so it can be restarted against new bounds with
// the time it has left.
type transition struct {
	kind     transitionKind
	tween    *gween.Tween
	easing   ease.TweenFunc
	from, to float64
	duration float32
	elapsed  float32
}

func newTransition(kind transitionKind, from, to float64, duration float32, fn ease.TweenFunc) *transition {
	if duration < 0 {
		duration = 0
	}
	t := &transition{kind: kind, easing: fn, from: from, to: to, duration: duration}
	t.tween = gween.New(float32(from), float32(to), duration, fn)
	return t
}

// step advances the transition by dt seconds and returns the new offset.
// A zero duration or zero-length move finishes on the first step without
// touching the tween, which would otherwise report its start value.
func (t *transition) step(dt float32) (float64, bool) {
	if t.duration <= 0 || t.from == t.to {
		t.elapsed = t.duration
		return t.to, true
	}
	if dt < 0 {
		dt = 0
	}
	t.elapsed += dt
	val, done := t.tween.Update(dt)
	if done {
		return t.to, true
	}
	return float64(val), false
}

// retarget restarts the transition from the given offset toward a new target,
// keeping only the time that was left.
func (t *transition) retarget(from, to float64) {
	remaining := t.duration - t.elapsed
	if remaining < 0 {
		remaining = 0
	}
	*t = *newTransition(t.kind, from, to, remaining, t.easing)
}

// decoration drives the decorative completion progress (the tick that grows
// in once the cursor lands). It never touches the offset.
type decoration struct {
	tween    *gween.Tween
	progress float64
}

func (d *decoration) start(duration float32, fn ease.TweenFunc) {
	if duration <= 0 {
		d.stop(1)
		return
	}
	d.progress = 0
	d.tween = gween.New(0, 1, duration, fn)
}

func (d *decoration) stop(progress float64) {
	d.tween = nil
	d.progress = progress
}

func (d *decoration) update(dt float32) {
	if d.tween == nil {
		return
	}
	val, done := d.tween.Update(dt)
	if done {
		d.stop(1)
		return
	}
	d.progress = float64(val)
}

// --- Sequencer ---

// targetFor returns the offset a transition of the given kind ends at.
func (s *Slider) targetFor(kind transitionKind) float64 {
	if kind == transitionCommit {
		return s.pos.max
	}
	return 0
}

// begin replaces any in-flight transition with a new one from the current
// offset. Partial progress of the old one is discarded.
func (s *Slider) begin(kind transitionKind, phase State) {
	s.anim = newTransition(kind, s.pos.offset, s.targetFor(kind), s.duration, s.easing)
	s.setPhase(phase)
	s.debugf("%s %.2f -> %.2f over %.3fs", kind, s.anim.from, s.anim.to, s.anim.duration)
}

// startCommit animates the cursor to the far end. The started event fires
// immediately with the ratio at which the cursor was let go.
func (s *Slider) startCommit() {
	ev := s.event(EventCompleteAnimationStarted)
	ev.Threshold = s.pos.Ratio()
	s.begin(transitionCommit, StateCommitting)
	s.fire(ev)
}

// startBounce animates the cursor back to the origin. Bounce has no events of
// its own.
func (s *Slider) startBounce() {
	s.begin(transitionBounce, StateBouncing)
}

// startReset animates a completed slider back to the origin. IsCompleted
// stays true until the final frame.
func (s *Slider) startReset() {
	s.decor.stop(0)
	s.begin(transitionReset, StateResetting)
	s.fire(s.event(EventResetAnimationStarted))
}

// stepTransition advances the in-flight transition and lands it when done.
// If a callback fired while landing replaces the transition, the replacement
// is left alone.
func (s *Slider) stepTransition(dt float32) {
	a := s.anim
	if a == nil {
		return
	}
	val, done := a.step(dt)
	s.pos = s.pos.clamp(val)
	if !done || s.anim != a {
		return
	}
	s.anim = nil
	switch a.kind {
	case transitionCommit:
		s.landCommit()
	case transitionBounce:
		s.setPhase(StateIdle)
	case transitionReset:
		s.landReset()
	}
}

// landCommit: completed, then onSlideComplete, then the ended event. State is
// written before any callback runs so commands issued from a callback apply
// on top of it.
func (s *Slider) landCommit() {
	s.setPhase(StateCompleted)
	if s.animateCompletion {
		s.decor.start(s.duration, s.easing)
	} else {
		s.decor.stop(1)
	}
	s.fire(s.event(EventSlideComplete))
	s.fire(s.event(EventCompleteAnimationEnded))
}

// landReset: idle, then onSlideReset, then the ended event.
func (s *Slider) landReset() {
	s.setPhase(StateIdle)
	s.fire(s.event(EventSlideReset))
	s.fire(s.event(EventResetAnimationEnded))
}
