// Package slideact is a headless slide-to-confirm control.
//
// A [Slider] models a cursor the user drags along a horizontal track.
// Releasing it at the far end commits an action; releasing it anywhere before
// that springs it back to the origin. The package owns the gesture and
// animation state machine only. Drawing and pointer delivery belong to the
// host: see slideact/ebitenview for an Ebitengine host and
// slideact/tcellview for a terminal one.
//
// # Quick start
//
//	s := slideact.New(slideact.DefaultConfig())
//	s.OnSlideComplete = func() { fmt.Println("confirmed") }
//
//	// From the host's input handling, in track coordinates:
//	s.PointerDown(x)
//	s.PointerMove(x)
//	s.PointerUp()
//
//	// Once per frame:
//	s.Update(dt)
//
// # States
//
// A slider rests in [StateIdle]. Grabbing the cursor moves it to
// [StateDragging]; releasing it past the threshold starts the commit
// transition ([StateCommitting]) which lands in [StateCompleted], while a
// short release bounces back ([StateBouncing]). A completed slider returns to
// idle through [Slider.Reset] ([StateResetting]) or [Slider.SetCompleted].
// [Slider.SetLocked] and [Slider.SetEnabled] gate pointer input on top of
// that.
//
// Transitions are [gween] tweens stepped by [Slider.Update]; nothing runs in
// the background. Callbacks are plain func fields invoked synchronously from
// the pointer method or Update call that triggers them.
//
// # Configuration
//
// [Config] carries geometry, threshold mode, animation duration, easing and
// behavior flags, and loads from TOML with [LoadConfig].
//
// [gween]: https://github.com/tanema/gween
package slideact
