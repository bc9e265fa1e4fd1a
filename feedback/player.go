package feedback

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/slideact"
)

// Sink plays streamers. Player is the speaker-backed implementation.
type Sink interface {
	Play(s beep.Streamer)
}

// Player mixes tones onto the system speaker.
type Player struct {
	mu          sync.Mutex
	sr          beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player for sample rate sr. Call Init before use.
func NewPlayer(sr beep.SampleRate) *Player {
	return &Player{sr: sr, mixer: &beep.Mixer{}}
}

// SampleRate returns the rate tones should be rendered at.
func (p *Player) SampleRate() beep.SampleRate { return p.sr }

// Init opens the speaker with a 100ms buffer and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.sr, p.sr.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play mixes s in. It is a no-op until Init succeeds.
func (p *Player) Play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops every sound and closes the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Attach plays tones for s's bump, completion and failure events through
// sink, rendered at sr. Callbacks already set on s still run first.
func Attach(s *slideact.Slider, sink Sink, sr beep.SampleRate) {
	prevBump := s.OnSlideBump
	s.OnSlideBump = func() {
		if prevBump != nil {
			prevBump()
		}
		sink.Play(BumpTone(sr))
	}

	prevComplete := s.OnSlideComplete
	s.OnSlideComplete = func() {
		if prevComplete != nil {
			prevComplete()
		}
		sink.Play(CompleteChime(sr))
	}

	prevFailed := s.OnSlideUserFailed
	s.OnSlideUserFailed = func(isOutside bool) {
		if prevFailed != nil {
			prevFailed(isOutside)
		}
		sink.Play(FailedBuzz(sr))
	}
}
