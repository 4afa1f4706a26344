// Package audio synthesises the game's sound cues with gopxl/beep.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueCollect  Cue = iota // target picked up
	CueCrash               // asteroid hit
	CueRoundEnd            // round timer expired
)

// Collection cue shape: a short sine with an upward pitch bend and exponential decay.
const (
	collectFreq     = 800.0
	collectDuration = 150 * time.Millisecond
	collectBend     = 0.2
	collectDecay    = 8.0
)

// chirp is a sine whose frequency rises linearly over its duration
// while its amplitude decays exponentially.
type chirp struct {
	sr    beep.SampleRate
	freq  float64
	bend  float64
	decay float64
	total int
	pos   int
}

// NewCollectGenerator returns the raw collection chirp.
func NewCollectGenerator(sr beep.SampleRate) beep.Streamer {
	return &chirp{
		sr:    sr,
		freq:  collectFreq,
		bend:  collectBend,
		decay: collectDecay,
		total: sr.N(collectDuration),
	}
}

func (c *chirp) Stream(samples [][2]float64) (n int, ok bool) {
	dur := float64(c.total) / float64(c.sr)
	for i := range samples {
		if c.pos >= c.total {
			return i, i > 0
		}
		t := float64(c.pos) / float64(c.sr)
		bend := 1 + c.bend*t/dur
		v := math.Sin(2*math.Pi*c.freq*t*bend) * math.Exp(-t*c.decay)

		samples[i][0] = v
		samples[i][1] = v
		c.pos++
	}
	return len(samples), true
}

func (c *chirp) Err() error { return nil }

// buzz is a decaying low saw used for crashes.
type buzz struct {
	sr    beep.SampleRate
	freq  float64
	total int
	pos   int
}

func (b *buzz) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.pos >= b.total {
			return i, i > 0
		}
		t := float64(b.pos) / float64(b.sr)
		phase := b.freq * t
		v := 2 * (phase - math.Floor(phase+0.5))
		v *= 1 - float64(b.pos)/float64(b.total)

		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *buzz) Err() error { return nil }

// NewCue builds a fresh streamer for a cue at the given volume in [0, 1].
// Returns nil for an unknown cue.
func NewCue(cue Cue, sr beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case CueCollect:
		s = NewCollectGenerator(sr)
	case CueCrash:
		s = &buzz{sr: sr, freq: 110, total: sr.N(200 * time.Millisecond)}
	case CueRoundEnd:
		s = roundEndChime(sr)
	default:
		return nil
	}
	return withVolume(s, volume)
}

// roundEndChime is two rising notes.
func roundEndChime(sr beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, 2)
	for _, freq := range []float64{660, 880} {
		tone, err := generators.SineTone(sr, freq)
		if err != nil {
			continue
		}
		notes = append(notes, withVolume(beep.Take(sr.N(120*time.Millisecond), tone), 0.5))
	}
	return beep.Seq(notes...)
}

// withVolume scales a streamer linearly; zero or less is silent and
// anything above 1 plays at full scale.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(min(vol, 1))}
}
