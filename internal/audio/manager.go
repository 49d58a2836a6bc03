package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	effectVolume = 0.6
)

// SoundType identifies a game sound effect.
type SoundType int

const (
	SoundCollect SoundType = iota
	SoundPenalty
	SoundWin
	SoundGameOver
)

// Manager owns the speaker and mixes one-shot effects into it.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewManager creates a sound manager. A muted manager accepts Play calls
// and does nothing.
func NewManager(muted bool) *Manager {
	return &Manager{
		mixer: &beep.Mixer{},
		muted: muted,
	}
}

// Initialize opens the speaker and starts the mixer. Safe to call more
// than once.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized || m.muted {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Play mixes a one-shot effect into the running speaker.
func (m *Manager) Play(st SoundType) {
	m.mu.Lock()
	initialized := m.initialized
	m.mu.Unlock()
	if !initialized || m.muted {
		return
	}

	var s beep.Streamer
	switch st {
	case SoundCollect:
		s = collectSound(sampleRate, effectVolume)
	case SoundPenalty:
		s = penaltySound(sampleRate, effectVolume)
	case SoundWin:
		s = winSound(sampleRate, effectVolume)
	case SoundGameOver:
		s = gameOverSound(sampleRate, effectVolume)
	default:
		return
	}

	// The mixer is pulled from the speaker goroutine; adding to it needs
	// the speaker lock.
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// Close silences the mixer. The speaker itself has no close in beep.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}
