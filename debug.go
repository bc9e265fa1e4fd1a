package slideact

import (
	"fmt"
	"io"
	"os"
)

// SetDebugMode enables or disables debug mode. When enabled, every phase
// change, toggle and fired event is logged as a "[slideact]" line.
func (s *Slider) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// SetDebugOutput redirects debug lines. A nil writer restores stderr.
func (s *Slider) SetDebugOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	s.debugOut = w
}

// debugf prints one debug line. Formatting is skipped when debug mode is off.
func (s *Slider) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(s.debugOut, "[slideact] "+format+"\n", args...)
}

// debugEvent logs a fired event with the data the callback receives.
func (s *Slider) debugEvent(ev SliderEvent) {
	if !s.debug {
		return
	}
	switch ev.Type {
	case EventSlideUserFailed:
		s.debugf("event %s outside=%v offset=%.2f", ev.Type, ev.IsOutside, ev.Offset)
	case EventCompleteAnimationStarted:
		s.debugf("event %s threshold=%.3f", ev.Type, ev.Threshold)
	default:
		s.debugf("event %s offset=%.2f ratio=%.3f", ev.Type, ev.Offset, ev.Ratio)
	}
}
