// Package audio gives entrance animations an optional audible tick: one short
// synthesized blip per view as it appears. No asset files, every sound is
// generated. Intended for demo and feedback use, disabled unless initialized.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

const (
	tickDuration = 45 * time.Millisecond
	tickAttack   = 3 * time.Millisecond
	tickRelease  = 30 * time.Millisecond
	baseTickFreq = 880.0
)

// SoundManager owns the speaker and mixes entrance ticks
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager with unity volume
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: 1.0,
	}
}

// Initialize sets up the audio system
// Returns an error when no audio device is available; callers degrade to silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops playback and closes the audio system
// Safe to call multiple times or without Initialize
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetVolume scales tick loudness, clamped to [0,1]
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = math.Min(math.Max(v, 0), 1)
}

// PlayTick plays one entrance tick. rank raises the pitch slightly per
// consecutive entrance so a staggered group reads as an ascending run.
func (sm *SoundManager) PlayTick(rank int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.volume <= 0 {
		return
	}
	if rank < 0 {
		rank = 0
	}

	// One semitone up per rank, capped an octave above base
	freq := baseTickFreq * math.Pow(2, float64(min(rank, 12))/12)
	tick := newEnvelope(newOscillator(freq, tickDuration), tickDuration, tickAttack, tickRelease)

	speaker.Lock()
	sm.mixer.Add(&effects.Volume{
		Streamer: tick,
		Base:     2,
		Volume:   math.Log2(math.Max(sm.volume, 1e-4)),
	})
	speaker.Unlock()
}
