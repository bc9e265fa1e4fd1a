package tcellview

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

const defaultFPS = 60

// Open creates and initialises the terminal screen with mouse drag events
// enabled. The caller must Fini it.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.EnableMouse(tcell.MouseDragEvents)
	screen.HideCursor()
	return screen, nil
}

// RunOptions configures Run.
type RunOptions struct {
	// FPS is the redraw and update rate. Zero means 60.
	FPS int
	// Keys are invoked for rune keys before the built-in bindings. Returning
	// true marks the key as handled.
	Keys func(r rune) bool
}

// Run drives v on screen until ctx is cancelled or the user presses Escape,
// Ctrl-C or q. Built-in keys: r resets, c completes, l toggles the lock,
// e toggles input.
func Run(ctx context.Context, screen tcell.Screen, v *View, opts RunOptions) error {
	fps := opts.FPS
	if fps <= 0 {
		fps = defaultFPS
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	last := time.Now()
	v.Draw(screen)
	screen.Show()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if ev == nil {
				return nil
			}
			if !v.handleEvent(screen, ev, opts.Keys) {
				return nil
			}
		case now := <-ticker.C:
			v.Update(float32(now.Sub(last).Seconds()))
			last = now
			v.Draw(screen)
			screen.Show()
		}
	}
}

// handleEvent applies one terminal event. It returns false to stop the loop.
func (v *View) handleEvent(screen tcell.Screen, ev tcell.Event, keys func(rune) bool) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		v.HandleMouse(ev)
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			r := ev.Rune()
			if keys != nil && keys(r) {
				return true
			}
			return v.handleRune(r)
		}
	case *tcell.EventResize:
		screen.Sync()
	}
	return true
}

func (v *View) handleRune(r rune) bool {
	s := v.slider
	switch r {
	case 'q':
		return false
	case 'r':
		s.Reset()
	case 'c':
		s.SetCompleted(true, true)
	case 'l':
		s.SetLocked(!s.IsLocked())
	case 'e':
		s.SetEnabled(!s.IsEnabled())
	}
	return true
}
