package ebitenview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/slideact"
)

const (
	statusW = 180
	statusH = 32
)

// cursorRect returns the cursor rectangle in screen space. The area margin
// insets it vertically as well as horizontally.
func (v *View) cursorRect() Rect {
	g := v.slider.Geometry()
	left, right := v.slider.CursorBounds()
	m := g.AreaMargin
	h := v.Height - 2*m
	if h < 0 {
		h = 0
	}
	return Rect{X: v.X + left, Y: v.Y + m, Width: right - left, Height: h}
}

// fillRect returns the part of the track the cursor has travelled over,
// measured from the origin edge to the cursor's centre.
func (v *View) fillRect() Rect {
	c := v.cursorRect()
	mid := c.X + c.Width/2
	b := v.Bounds()
	if v.slider.IsReversed() {
		return Rect{X: mid, Y: b.Y, Width: b.X + b.Width - mid, Height: b.Height}
	}
	return Rect{X: b.X, Y: b.Y, Width: mid - b.X, Height: b.Height}
}

// tickRect returns the completion mark: a bar across the middle of the
// cursor that grows with the completion progress.
func (v *View) tickRect() Rect {
	c := v.cursorRect()
	w := c.Width * 0.6 * v.slider.CompletionProgress()
	h := c.Height / 8
	return Rect{X: c.X + (c.Width-w)/2, Y: c.Y + (c.Height-h)/2, Width: w, Height: h}
}

// colors returns the palette adjusted for the current state.
func (v *View) colors() Palette {
	p := v.Palette
	switch v.slider.State() {
	case slideact.StateDisabled:
		p.Track, p.Fill, p.Cursor = p.Track.dim(0.4), p.Fill.dim(0.4), p.Cursor.dim(0.4)
	case slideact.StateLocked:
		p.Cursor = p.Cursor.dim(0.7)
	}
	if v.flash > 0 {
		t := v.flash / flashSeconds
		p.Cursor = lerpColor(p.Cursor, p.Failed, t)
	}
	return p
}

func lerpColor(a, b Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// Draw renders the slider onto screen, then the status overlay and any
// queued screenshots.
func (v *View) Draw(screen *ebiten.Image) {
	p := v.colors()
	fillRect(screen, v.Bounds(), p.Track.toRGBA())
	fillRect(screen, v.fillRect(), p.Fill.toRGBA())
	fillRect(screen, v.cursorRect(), p.Cursor.toRGBA())
	if v.slider.CompletionProgress() > 0 {
		fillRect(screen, v.tickRect(), p.Tick.toRGBA())
	}
	if v.ShowStatus {
		v.drawStatus(screen)
	}
	v.flushScreenshots(screen)
}

func fillRect(dst *ebiten.Image, r Rect, clr color.Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, true)
}

// drawStatus draws the overlay just above the track. Its image is redrawn
// only when the text changes.
func (v *View) drawStatus(screen *ebiten.Image) {
	if v.statusImg == nil {
		v.statusImg = ebiten.NewImage(statusW, statusH)
	}
	if v.statusDrawn != v.statusText {
		v.statusImg.Clear()
		// Semi-transparent background for readability
		v.statusImg.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(v.statusImg, v.statusText)
		v.statusDrawn = v.statusText
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(v.X, v.Y-statusH-4)
	screen.DrawImage(v.statusImg, op)
}

// statusLine formats the overlay text.
func statusLine(s *slideact.Slider, fps, tps float64) string {
	return fmt.Sprintf("%s %d%%\nFPS: %.1f TPS: %.1f", s.State(), s.PositionPercent(), fps, tps)
}
