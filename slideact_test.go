package slideact

import (
	"math"
	"testing"
)

func TestGeometryMaxOffset(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
		want float64
	}{
		{"plain", Geometry{TrackWidth: 300, CursorWidth: 60}, 240},
		{"with margin", Geometry{TrackWidth: 300, CursorWidth: 60, AreaMargin: 10}, 220},
		{"exact fit", Geometry{TrackWidth: 80, CursorWidth: 60, AreaMargin: 10}, 0},
		{"cursor wider than track", Geometry{TrackWidth: 50, CursorWidth: 60}, 0},
		{"margins wider than track", Geometry{TrackWidth: 100, CursorWidth: 20, AreaMargin: 60}, 0},
		{"negative margin ignored", Geometry{TrackWidth: 300, CursorWidth: 60, AreaMargin: -20}, 240},
		{"negative track", Geometry{TrackWidth: -300, CursorWidth: 60}, 0},
		{"NaN cursor", Geometry{TrackWidth: 300, CursorWidth: math.NaN()}, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.MaxOffset(); got != tt.want {
				t.Errorf("MaxOffset() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPositionClamp(t *testing.T) {
	p := Position{}.withMax(240)

	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"inside", 120, 120},
		{"zero", 0, 0},
		{"max", 240, 240},
		{"below", -5, 0},
		{"above", 1000, 240},
		{"NaN", math.NaN(), 0},
		{"+Inf", math.Inf(1), 240},
		{"-Inf", math.Inf(-1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.clamp(tt.in).Offset(); got != tt.want {
				t.Errorf("clamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPositionRatioAndPercent(t *testing.T) {
	p := Position{}.withMax(240)

	tests := []struct {
		offset  float64
		ratio   float64
		percent int
	}{
		{0, 0, 0},
		{120, 0.5, 50},
		{239, 239.0 / 240, 99},
		{240, 1, 100},
		{2.4, 0.01, 1},
	}
	for _, tt := range tests {
		q := p.clamp(tt.offset)
		if math.Abs(q.Ratio()-tt.ratio) > 1e-9 {
			t.Errorf("Ratio() at %v = %v, want %v", tt.offset, q.Ratio(), tt.ratio)
		}
		if q.Percent() != tt.percent {
			t.Errorf("Percent() at %v = %d, want %d", tt.offset, q.Percent(), tt.percent)
		}
	}
}

func TestPositionEmptyTrack(t *testing.T) {
	p := Position{}.withMax(0)
	if p.Ratio() != 0 || p.Percent() != 0 {
		t.Errorf("empty track: ratio=%v percent=%d, want 0 and 0", p.Ratio(), p.Percent())
	}
	if p.AtEnd() {
		t.Error("empty track should never report AtEnd")
	}
	if got := p.clamp(50).Offset(); got != 0 {
		t.Errorf("empty track clamp = %v, want 0", got)
	}
}

func TestPositionWithMaxShrinks(t *testing.T) {
	p := Position{}.withMax(240).clamp(200)
	p = p.withMax(100)
	if p.Offset() != 100 || p.Max() != 100 {
		t.Errorf("after shrink: offset=%v max=%v, want 100 and 100", p.Offset(), p.Max())
	}
	p = p.withMax(-10)
	if p.Offset() != 0 || p.Max() != 0 {
		t.Errorf("negative max: offset=%v max=%v, want 0 and 0", p.Offset(), p.Max())
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{StateIdle, "idle"},
		{StateDragging, "dragging"},
		{StateCommitting, "committing"},
		{StateCompleted, "completed"},
		{StateBouncing, "bouncing"},
		{StateResetting, "resetting"},
		{StateLocked, "locked"},
		{StateDisabled, "disabled"},
		{State(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestEventTypeString(t *testing.T) {
	if got := EventCompleteAnimationStarted.String(); got != "complete-animation-started" {
		t.Errorf("got %q", got)
	}
	if got := EventType(99).String(); got != "unknown" {
		t.Errorf("got %q", got)
	}
}
