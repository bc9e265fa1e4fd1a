package slideact

import (
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func TestTransitionStep(t *testing.T) {
	tr := newTransition(transitionCommit, 0, 240, 0.5, ease.Linear)

	tests := []struct {
		dt       float32
		want     float64
		wantDone bool
	}{
		{0.125, 60, false},
		{0.125, 120, false},
		{0.25, 240, true},
	}
	for i, tt := range tests {
		got, done := tr.step(tt.dt)
		if math.Abs(got-tt.want) > 0.001 || done != tt.wantDone {
			t.Errorf("step %d: got (%v, %v), want (%v, %v)", i, got, done, tt.want, tt.wantDone)
		}
	}
}

func TestTransitionOvershootLandsOnTarget(t *testing.T) {
	tr := newTransition(transitionBounce, 200, 0, 0.5, ease.OutBack)
	got, done := tr.step(3)
	if !done || got != 0 {
		t.Errorf("step(3) = (%v, %v), want (0, true)", got, done)
	}
}

func TestTransitionZeroDurationFinishesImmediately(t *testing.T) {
	tr := newTransition(transitionCommit, 100, 240, 0, ease.Linear)
	got, done := tr.step(0)
	if !done || got != 240 {
		t.Errorf("step(0) = (%v, %v), want (240, true)", got, done)
	}
}

func TestTransitionZeroLengthFinishesImmediately(t *testing.T) {
	tr := newTransition(transitionBounce, 0, 0, 0.5, ease.Linear)
	if _, done := tr.step(0.001); !done {
		t.Error("zero-length transition should finish on the first step")
	}
}

func TestTransitionNegativeDtHolds(t *testing.T) {
	tr := newTransition(transitionCommit, 0, 240, 0.5, ease.Linear)
	tr.step(0.25)
	got, done := tr.step(-1)
	if done || math.Abs(got-120) > 0.001 {
		t.Errorf("step(-1) = (%v, %v), want (120, false)", got, done)
	}
}

func TestTransitionRetargetKeepsRemainingTime(t *testing.T) {
	tr := newTransition(transitionCommit, 0, 240, 0.5, ease.Linear)
	tr.step(0.25)
	tr.retarget(120, 400)

	if tr.duration != 0.25 {
		t.Fatalf("duration = %v, want 0.25", tr.duration)
	}
	if tr.kind != transitionCommit {
		t.Errorf("kind = %v, want commit", tr.kind)
	}
	got, _ := tr.step(0.125)
	if math.Abs(got-260) > 0.001 {
		t.Errorf("step = %v, want 260", got)
	}
}

func TestTransitionKindString(t *testing.T) {
	tests := []struct {
		kind transitionKind
		want string
	}{
		{transitionCommit, "commit"},
		{transitionBounce, "bounce"},
		{transitionReset, "reset"},
		{transitionKind(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestEasingShapesCommit(t *testing.T) {
	linear := testConfig()
	in := testConfig()
	in.Easing = "inQuad"

	a, b := New(linear), New(in)
	a.SetCompleted(true, true)
	b.SetCompleted(true, true)
	a.Update(0.25)
	b.Update(0.25)

	assertOffset(t, a, 120)
	assertOffset(t, b, 60)
}

func TestCompletionDecoration(t *testing.T) {
	s := newTestSlider(t)
	s.SetCompleted(true, true)
	s.Update(0.25)
	if got := s.CompletionProgress(); got != 0 {
		t.Fatalf("CompletionProgress() = %v mid-commit, want 0", got)
	}

	// The landing frame already advances the decoration.
	s.Update(0.25)
	assertState(t, s, StateCompleted)
	if got := s.CompletionProgress(); math.Abs(got-0.5) > 0.001 {
		t.Errorf("CompletionProgress() = %v, want 0.5", got)
	}
	s.Update(0.25)
	if got := s.CompletionProgress(); got != 1 {
		t.Errorf("CompletionProgress() = %v, want 1", got)
	}
	assertOffset(t, s, 240)

	s.Reset()
	if got := s.CompletionProgress(); got != 0 {
		t.Errorf("CompletionProgress() = %v after Reset, want 0", got)
	}
}

func TestCompletionDecorationDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.AnimateCompletion = false
	s := New(cfg)
	s.SetCompleted(true, true)
	finish(s)
	if got := s.CompletionProgress(); got != 1 {
		t.Errorf("CompletionProgress() = %v, want 1", got)
	}
}

func TestAnimationIsFrameDriven(t *testing.T) {
	cfg := testConfig()
	cfg.AnimationDuration = Duration(time.Second)
	s := New(cfg)
	s.SetCompleted(true, true)

	for i := 0; i < 3; i++ {
		s.Update(0.25)
	}
	assertState(t, s, StateCommitting)
	assertOffset(t, s, 180)
	s.Update(0.25)
	assertState(t, s, StateCompleted)
}
