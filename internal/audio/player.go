package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// DefaultSampleRate is used when opening the speaker.
const DefaultSampleRate = beep.SampleRate(44100)

// Player plays sound cues. Play must not block the caller.
type Player interface {
	Play(cue Cue)
	Close()
}

// Speaker plays cues on the default audio device through a mixer.
type Speaker struct {
	mu     sync.Mutex
	sr     beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	open   bool
}

// OpenSpeaker initialises the audio device. Fails when no device is available.
func OpenSpeaker(sr beep.SampleRate, volume float64) (*Speaker, error) {
	if err := speaker.Init(sr, sr.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &Speaker{
		sr:     sr,
		volume: volume,
		mixer:  &beep.Mixer{},
		open:   true,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues a cue on the mixer.
func (s *Speaker) Play(cue Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return
	}
	st := NewCue(cue, s.sr, s.volume)
	if st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences the mixer and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.open = false
}

// Silent discards every cue. Used with --no-audio or when no device exists.
type Silent struct{}

// Play does nothing.
func (Silent) Play(Cue) {}

// Close does nothing.
func (Silent) Close() {}
