// Package audio plays the game's sound cues through the system speaker.
// Sounds are synthesized; there are no audio assets.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-dash/internal/games/dash"
)

const (
	sampleRate = beep.SampleRate(44100)

	// retryInterval throttles re-initialization attempts after a failure.
	retryInterval = 5 * time.Second
)

// SoundManager plays coin and death cues. Until the speaker initializes it
// stays silent; Retry re-attempts initialization.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	lastAttempt time.Time

	initSpeaker func() error
	now         func() time.Time
}

// NewSoundManager creates a silent sound manager. Call Initialize to
// open the speaker.
func NewSoundManager() *SoundManager {
	sm := &SoundManager{
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
	sm.initSpeaker = func() error {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
			return err
		}
		speaker.Play(sm.mixer)
		return nil
	}
	return sm
}

// Initialize sets up the audio system.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initLocked()
}

func (sm *SoundManager) initLocked() error {
	if sm.initialized {
		return nil
	}
	sm.lastAttempt = sm.now()
	if err := sm.initSpeaker(); err != nil {
		return err
	}
	sm.initialized = true
	return nil
}

// Retry re-attempts initialization if the speaker is not open and the
// last attempt is old enough. Call it on user input.
func (sm *SoundManager) Retry() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || sm.now().Sub(sm.lastAttempt) < retryInterval {
		return nil
	}
	return sm.initLocked()
}

// Ready reports whether sounds are audible.
func (sm *SoundManager) Ready() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues a cue. Silent until initialized.
func (sm *SoundManager) Play(s dash.Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if st := cue(s); st != nil {
		speaker.Lock()
		sm.mixer.Add(st)
		speaker.Unlock()
	}
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// cue returns a finite streamer for the sound.
func cue(s dash.Sound) beep.Streamer {
	switch s {
	case dash.SoundCoin:
		return beep.Take(sampleRate.N(time.Millisecond*180), NewChirpGenerator(sampleRate))
	case dash.SoundDeath:
		return beep.Take(sampleRate.N(time.Millisecond*400), NewBoingGenerator(sampleRate))
	default:
		return nil
	}
}

// ChirpGenerator generates a two-note rising coin chirp.
type ChirpGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewChirpGenerator creates a coin chirp generator.
func NewChirpGenerator(sr beep.SampleRate) *ChirpGenerator {
	return &ChirpGenerator{sr: sr}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	step := g.sr.N(time.Millisecond * 70)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// B5 then E6
		freq := 988.0
		if g.pos >= step {
			freq = 1319.0
		}
		envelope := math.Exp(-t * 10)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// BoingGenerator generates a falling pitch-bend boing.
type BoingGenerator struct {
	sr    beep.SampleRate
	pos   int
	phase float64
}

// NewBoingGenerator creates a death boing generator.
func NewBoingGenerator(sr beep.SampleRate) *BoingGenerator {
	return &BoingGenerator{sr: sr}
}

func (g *BoingGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Pitch drops from 420Hz with a wobble
		freq := 420*math.Exp(-t*4) + 30*math.Sin(2*math.Pi*12*t)
		g.phase += freq / float64(g.sr)
		if g.phase >= 1 {
			g.phase -= 1
		}
		envelope := math.Exp(-t * 5)
		sample := 0.3 * envelope * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BoingGenerator) Err() error {
	return nil
}
