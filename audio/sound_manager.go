package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system. Audio is optional: callers treat a
// failure here as a warning, not a startup error.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep doesn't provide a Close() method for speaker; clearing the
	// mixer ensures no audio artifacts
	sm.mixer.Clear()
	sm.initialized = false
}

// PlayBounce plays a short tick when the ball reflects off a paddle or wall
func (sm *SoundManager) PlayBounce() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(time.Millisecond*40), NewToneGenerator(sampleRate, 880))
	sm.mixer.Add(streamer)
}

// PlayGoal plays a two-note chime when a point is scored
func (sm *SoundManager) PlayGoal() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	first := beep.Take(sampleRate.N(time.Millisecond*120), NewToneGenerator(sampleRate, 523))
	second := beep.Take(sampleRate.N(time.Millisecond*200), NewToneGenerator(sampleRate, 784))
	sm.mixer.Add(beep.Seq(first, second))
}

// ToneGenerator generates a sine tone with a fade-in envelope to avoid
// clicks at the sample boundary
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewToneGenerator creates a sine tone generator at the given frequency
func NewToneGenerator(sr beep.SampleRate, freq float64) *ToneGenerator {
	return &ToneGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Min(t/0.005, 1.0)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
