// Package audio plays the game's only sound, the hit blip.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate  = beep.SampleRate(44100)
	hitFreq     = 880.0
	hitDuration = 50 * time.Millisecond
	hitVolume   = 0.35
)

// Player is what the intent router needs from audio.
type Player interface {
	PlayHit()
}

// Nop is the silent player used headless and in tests.
type Nop struct{}

func (Nop) PlayHit() {}

// SoundManager plays through the speaker. Every hit is mixed in, so rapid
// hits overlap instead of cutting each other off.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Calling it twice is harmless.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

func (sm *SoundManager) PlayHit() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	tone, err := HitTone(sampleRate)
	if err != nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(tone)
	speaker.Unlock()
}

// Cleanup silences everything still queued.
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

// HitTone is the 880Hz, 50ms blip.
func HitTone(sr beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, hitFreq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sr.N(hitDuration), &effects.Volume{
		Streamer: sine,
		Base:     2,
		Volume:   math.Log2(hitVolume),
	}), nil
}
