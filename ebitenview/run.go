package ebitenview

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Background fills the screen before the view draws.
	Background Color
	// ShowStatus overrides View.ShowStatus when set.
	ShowStatus bool
	// ScreenshotKeys queue a screenshot labeled "manual" when pressed.
	ScreenshotKeys []ebiten.Key
	// Centered places the track in the middle of the window.
	Centered bool
	// BeforeUpdate, if set, runs every tick before the view updates, with
	// the same step.
	BeforeUpdate func(dt float32)
}

// game adapts a View to ebiten.Game.
type game struct {
	view *View
	cfg  RunConfig
}

// Run opens a window and hosts v until the window is closed or Escape is
// pressed. It blocks and must be called from the main goroutine.
func Run(v *View, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("run: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.ShowStatus {
		v.ShowStatus = true
	}
	if cfg.Centered {
		b := v.Bounds()
		v.X = (float64(cfg.Width) - b.Width) / 2
		v.Y = (float64(cfg.Height) - b.Height) / 2
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	err := ebiten.RunGame(&game{view: v, cfg: cfg})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// tickSeconds is the fixed step per Update call.
func tickSeconds() float32 {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return 1 / float32(tps)
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, k := range g.cfg.ScreenshotKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.view.Screenshot("manual")
			break
		}
	}
	dt := tickSeconds()
	if g.cfg.BeforeUpdate != nil {
		g.cfg.BeforeUpdate(dt)
	}
	g.view.Update(dt)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.Background.A > 0 {
		screen.Fill(g.cfg.Background.toRGBA())
	}
	g.view.Draw(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
