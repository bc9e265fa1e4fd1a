// Package ebitenview hosts a slideact.Slider in an Ebitengine game: it routes
// mouse and touch input to the slider in track coordinates, steps it once per
// tick and draws the track, cursor and completion mark with the vector
// package.
package ebitenview

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/slideact"
)

const (
	defaultHeight = 72
	flashSeconds  = 0.25
	statusEvery   = 0.5
)

// View draws a slider at a fixed screen position and feeds it input.
type View struct {
	// X and Y place the top-left corner of the track on screen.
	X, Y float64
	// Height of the track. The track width comes from the slider geometry.
	Height float64
	// Palette used by Draw.
	Palette Palette
	// ShowStatus draws a small overlay with the state, percentage and
	// frame rates above the track.
	ShowStatus bool
	// ScreenshotDir is the directory queued screenshots are written to.
	ScreenshotDir string

	slider *slideact.Slider

	capture    capturedPointer
	touchIDs   []ebiten.TouchID
	flash      float64
	sinceStats float64
	statusText string

	statusImg       *ebiten.Image
	statusDrawn     string
	screenshotQueue []string
}

// New creates a view for s with the default palette and height.
func New(s *slideact.Slider) *View {
	return &View{
		Height:        defaultHeight,
		Palette:       DefaultPalette(),
		ScreenshotDir: "screenshots",
		slider:        s,
	}
}

// Slider returns the slider the view hosts.
func (v *View) Slider() *slideact.Slider { return v.slider }

// Bounds returns the track rectangle in screen space.
func (v *View) Bounds() Rect {
	return Rect{X: v.X, Y: v.Y, Width: v.slider.Geometry().TrackWidth, Height: v.Height}
}

// FlashFailed tints the cursor with the failure color for a moment. Hosts
// typically call it from OnSlideUserFailed.
func (v *View) FlashFailed() {
	v.flash = flashSeconds
}

// Update polls input, then advances the slider and the view's own timers by
// dt seconds.
func (v *View) Update(dt float32) {
	v.pollInput()
	v.step(dt)
}

// step advances everything except input polling.
func (v *View) step(dt float32) {
	v.slider.Update(dt)
	sec := float64(dt)
	if v.flash > 0 {
		v.flash -= sec
		if v.flash < 0 {
			v.flash = 0
		}
	}
	if v.ShowStatus {
		v.sinceStats += sec
		if v.statusText == "" || v.sinceStats >= statusEvery {
			v.sinceStats = 0
			v.statusText = statusLine(v.slider, ebiten.ActualFPS(), ebiten.ActualTPS())
		}
	}
}
