package ebitenview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerSource identifies the device a pointer sample came from.
type pointerSource uint8

const (
	sourceNone  pointerSource = iota
	sourceMouse               // left mouse button
	sourceTouch               // one touch, identified by its TouchID
)

// pointerEdge is what happened to a pointer this frame.
type pointerEdge uint8

const (
	edgePress pointerEdge = iota
	edgeMove
	edgeRelease
)

// pointerSample is one pointer observation in screen space.
type pointerSample struct {
	source pointerSource
	touch  ebiten.TouchID
	edge   pointerEdge
	x, y   float64
}

// capturedPointer is the single pointer the view currently forwards to the
// slider. Other pointers are ignored until it is released.
type capturedPointer struct {
	source pointerSource
	touch  ebiten.TouchID
	lastX  float64
}

func (c capturedPointer) owns(sm pointerSample) bool {
	if c.source == sourceNone || c.source != sm.source {
		return false
	}
	return c.source != sourceTouch || c.touch == sm.touch
}

// pollInput turns this frame's mouse and touch state into samples and routes
// them. The mouse is handled first, then touches.
func (v *View) pollInput() {
	v.pollMouse()
	v.pollTouches()
}

// pollMouse handles the left mouse button.
func (v *View) pollMouse() {
	mx, my := ebiten.CursorPosition()
	sm := pointerSample{source: sourceMouse, x: float64(mx), y: float64(my)}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		sm.edge = edgePress
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		sm.edge = edgeRelease
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		sm.edge = edgeMove
	default:
		return
	}
	v.route(sm)
}

// pollTouches handles new touches and the captured touch, if any.
func (v *View) pollTouches() {
	v.touchIDs = inpututil.AppendJustPressedTouchIDs(v.touchIDs[:0])
	for _, tid := range v.touchIDs {
		tx, ty := ebiten.TouchPosition(tid)
		v.route(pointerSample{source: sourceTouch, touch: tid, edge: edgePress, x: float64(tx), y: float64(ty)})
	}

	if v.capture.source != sourceTouch {
		return
	}
	tid := v.capture.touch
	if inpututil.IsTouchJustReleased(tid) {
		// A released touch no longer has a position; release where it was.
		v.route(pointerSample{source: sourceTouch, touch: tid, edge: edgeRelease, x: v.capture.lastX + v.X})
		return
	}
	tx, ty := ebiten.TouchPosition(tid)
	v.route(pointerSample{source: sourceTouch, touch: tid, edge: edgeMove, x: float64(tx), y: float64(ty)})
}

// route forwards one sample to the slider in track coordinates. A press only
// captures when it lands on the track; moves and releases only count for the
// captured pointer, wherever they are.
func (v *View) route(sm pointerSample) {
	x := sm.x - v.X
	switch sm.edge {
	case edgePress:
		if v.capture.source != sourceNone || !v.Bounds().Contains(sm.x, sm.y) {
			return
		}
		v.capture = capturedPointer{source: sm.source, touch: sm.touch, lastX: x}
		v.slider.PointerDown(x)
	case edgeMove:
		if !v.capture.owns(sm) {
			return
		}
		v.capture.lastX = x
		v.slider.PointerMove(x)
	case edgeRelease:
		if !v.capture.owns(sm) {
			return
		}
		v.capture = capturedPointer{}
		v.slider.PointerUp()
	}
}
