// Package audio synthesizes the arena cue sounds and background loop with beep
package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/SrWilson89/doom/component"
	"github.com/SrWilson89/doom/parameter"
)

// ErrUnknownCue is returned by Play for a cue with no sound
var ErrUnknownCue = errors.New("unknown sound cue")

// SoundManager plays cue effects and the background loop through one mixer
// Every operation is a no-op until Initialize succeeds and after Cleanup
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool

	lastPlayed [component.CueCount]time.Time
	now        func() time.Time
	open       func(rate beep.SampleRate, bufferSize int, s beep.Streamer) error
}

// openSpeaker initializes the output device and plays s on it
func openSpeaker(rate beep.SampleRate, bufferSize int, s beep.Streamer) error {
	if err := speaker.Init(rate, bufferSize); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(s)
	return nil
}

// NewSoundManager creates a manager; nil cfg uses defaults
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
		open:  openSpeaker,
	}
}

// Initialize opens the speaker and starts the mixer
// Disabled audio initializes nothing and returns nil
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := sm.open(rate, rate.N(parameter.AudioBufferDuration), sm.mixer); err != nil {
		return err
	}
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.music = nil

	// beep keeps the speaker open; clearing the mixer silences it
	sm.initialized = false
}

// Play starts cue on top of whatever is playing
// Repeats of one cue within MinSoundGap are dropped
func (sm *SoundManager) Play(cue component.Cue) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return nil
	}

	streamer := CueSound(cue, sm.cfg)
	if streamer == nil {
		return fmt.Errorf("%w: %d", ErrUnknownCue, cue)
	}

	now := sm.now()
	if now.Sub(sm.lastPlayed[cue]) < parameter.MinSoundGap {
		return nil
	}
	sm.lastPlayed[cue] = now

	sm.add(streamer)
	return nil
}

// StartMusic starts the background loop unless already playing
func (sm *SoundManager) StartMusic() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return nil
	}
	if sm.music != nil {
		return nil
	}

	loop := NewMusicGenerator(beep.SampleRate(sm.cfg.SampleRate))
	ctrl := &beep.Ctrl{Streamer: newVolume(loop, sm.cfg.MusicVolume*sm.cfg.MasterVolume)}
	sm.music = ctrl
	sm.add(ctrl)
	return nil
}

// StopMusic silences the background loop
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	// A nil streamer drains the control out of the mixer
	speaker.Lock()
	sm.music.Streamer = nil
	speaker.Unlock()
	sm.music = nil
}

// MusicPlaying reports whether the background loop is active
func (sm *SoundManager) MusicPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.music != nil
}

// add places s on the mixer under the speaker lock; caller holds mu
func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
