// Package tcellview hosts a slideact.Slider in a terminal. Track units map to
// cell columns through Scale; button-1 mouse events drive the gesture and a
// ticker drives Update.
package tcellview

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/slideact"
)

// Styles used by Draw.
var (
	styleTrack  = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray)
	styleFill   = tcell.StyleDefault.Background(tcell.ColorGreen)
	styleCursor = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	styleFailed = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorWhite)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

const flashFrames = 8

// View draws a slider into a rectangle of cells and feeds it mouse input.
type View struct {
	// X and Y are the top-left cell of the track.
	X, Y int
	// Rows is the track height in cells.
	Rows int
	// Scale is the number of track units per cell column.
	Scale float64
	// ShowStatus prints the state and percentage under the track.
	ShowStatus bool

	slider *slideact.Slider
	down   bool
	flash  int
}

// New creates a three-row view for s at one track unit per column.
func New(s *slideact.Slider) *View {
	return &View{Rows: 3, Scale: 1, ShowStatus: true, slider: s}
}

// Slider returns the slider the view hosts.
func (v *View) Slider() *slideact.Slider { return v.slider }

// Columns returns the track width in cells.
func (v *View) Columns() int {
	return int(math.Ceil(v.slider.Geometry().TrackWidth / v.scale()))
}

func (v *View) scale() float64 {
	if v.Scale <= 0 {
		return 1
	}
	return v.Scale
}

// contains reports whether the cell (col, row) is on the track.
func (v *View) contains(col, row int) bool {
	return col >= v.X && col < v.X+v.Columns() && row >= v.Y && row < v.Y+v.Rows
}

// trackX maps a cell column to the centre of that column in track units.
func (v *View) trackX(col int) float64 {
	return (float64(col-v.X) + 0.5) * v.scale()
}

// FlashFailed paints the cursor in the failure style for a few frames.
func (v *View) FlashFailed() {
	v.flash = flashFrames
}

// HandleMouse routes a mouse event. A button-1 press on the track grabs;
// motion with button 1 held drags; any event without button 1 releases.
// Wheel and other buttons are ignored.
func (v *View) HandleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !v.down:
		if !v.contains(col, row) {
			return
		}
		v.down = true
		v.slider.PointerDown(v.trackX(col))
	case pressed:
		v.slider.PointerMove(v.trackX(col))
	case v.down:
		v.down = false
		v.slider.PointerUp()
	}
}

// Update advances the slider by dt seconds.
func (v *View) Update(dt float32) {
	v.slider.Update(dt)
	if v.flash > 0 {
		v.flash--
	}
}

// cursorCells returns the first and one-past-last cursor columns relative to
// the track.
func (v *View) cursorCells() (from, to int) {
	left, right := v.slider.CursorBounds()
	from = int(math.Floor(left / v.scale()))
	to = int(math.Ceil(right / v.scale()))
	if cols := v.Columns(); to > cols {
		to = cols
	}
	return from, to
}

// glyph returns the rune drawn in the middle of the cursor.
func (v *View) glyph() rune {
	switch {
	case v.slider.CompletionProgress() >= 1:
		return '✓'
	case v.slider.State() == slideact.StateLocked:
		return '#'
	case v.slider.IsReversed():
		return '<'
	}
	return '>'
}

// Draw paints the track, the fill behind the cursor, the cursor and the
// status line. It does not call Show.
func (v *View) Draw(screen tcell.Screen) {
	cols := v.Columns()
	from, to := v.cursorCells()
	mid := (from + to) / 2
	dim := v.slider.State() == slideact.StateDisabled

	cursor := styleCursor
	if v.flash > 0 {
		cursor = styleFailed
	}
	for r := 0; r < v.Rows; r++ {
		for c := 0; c < cols; c++ {
			st, ch := styleTrack, ' '
			switch {
			case c >= from && c < to:
				st = cursor
				if r == v.Rows/2 && c == mid {
					ch = v.glyph()
				}
			case v.filled(c, from, to):
				st = styleFill
			}
			screen.SetContent(v.X+c, v.Y+r, ch, nil, st.Dim(dim))
		}
	}
	if v.ShowStatus {
		v.drawStatus(screen, cols)
	}
}

// filled reports whether column c lies between the origin edge and the
// cursor.
func (v *View) filled(c, from, to int) bool {
	if v.slider.IsReversed() {
		return c >= to
	}
	return c < from
}

func (v *View) drawStatus(screen tcell.Screen, cols int) {
	line := fmt.Sprintf("%-10s %3d%%", v.slider.State(), v.slider.PositionPercent())
	row := v.Y + v.Rows
	for i := 0; i < cols; i++ {
		ch := ' '
		if i < len(line) {
			ch = rune(line[i])
		}
		screen.SetContent(v.X+i, row, ch, nil, styleStatus)
	}
}
