// Package feedback plays short tones for slider events on the speaker: a
// tick when a drag reaches the end, a two-note chime on completion and a low
// buzz on a failed slide.
package feedback

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// DefaultSampleRate is the rate the Player opens the speaker with.
const DefaultSampleRate = beep.SampleRate(44100)

// Tone describes one enveloped sine note.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Release  time.Duration // linear fade at the end of the note
	Volume   float64       // linear gain in (0, 1]
}

var (
	bumpTone   = Tone{Freq: 1320, Duration: 35 * time.Millisecond, Release: 25 * time.Millisecond, Volume: 0.4}
	chimeLow   = Tone{Freq: 660, Duration: 90 * time.Millisecond, Release: 30 * time.Millisecond, Volume: 0.5}
	chimeHigh  = Tone{Freq: 990, Duration: 160 * time.Millisecond, Release: 120 * time.Millisecond, Volume: 0.5}
	failedTone = Tone{Freq: 140, Duration: 90 * time.Millisecond, Release: 40 * time.Millisecond, Volume: 0.35}
)

// Streamer renders t at sr. A frequency the sample rate cannot carry
// renders as silence of the same length.
func (t Tone) Streamer(sr beep.SampleRate) beep.Streamer {
	n := sr.N(t.Duration)
	sine, err := generators.SineTone(sr, t.Freq)
	if err != nil {
		return beep.Silence(n)
	}
	return withVolume(&fade{
		streamer: beep.Take(n, sine),
		total:    n,
		release:  sr.N(t.Release),
	}, t.Volume)
}

// BumpTone is the tick played when a drag reaches the far end.
func BumpTone(sr beep.SampleRate) beep.Streamer { return bumpTone.Streamer(sr) }

// CompleteChime is the rising two-note chime played on completion.
func CompleteChime(sr beep.SampleRate) beep.Streamer {
	return beep.Seq(chimeLow.Streamer(sr), chimeHigh.Streamer(sr))
}

// FailedBuzz is the low buzz played on a failed slide.
func FailedBuzz(sr beep.SampleRate) beep.Streamer { return failedTone.Streamer(sr) }

// fade applies a linear release over the last samples of a finite stream.
type fade struct {
	streamer beep.Streamer
	pos      int
	total    int
	release  int
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	start := f.total - f.release
	for i := 0; i < n; i++ {
		if f.release > 0 && f.pos >= start {
			g := float64(f.total-f.pos) / float64(f.release)
			samples[i][0] *= g
			samples[i][1] *= g
		}
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// withVolume scales s by a linear gain. Zero or less is silent.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
