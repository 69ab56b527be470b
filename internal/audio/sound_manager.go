package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/appengine-ltd/lumber-inc/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays the game's one-shot cues through a shared mixer. Until
// Initialize succeeds every Play is a no-op, so the game runs silently on
// machines without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

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

// Cleanup silences everything still queued on the mixer.
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

func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

func (sm *SoundManager) Play(cue game.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := cueStreamer(cue)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// cueStreamer builds a fresh, finite streamer for cue.
func cueStreamer(cue game.Cue) beep.Streamer {
	switch cue {
	case game.CueChop:
		return beep.Take(sampleRate.N(time.Millisecond*120), NewChopGenerator(sampleRate))
	case game.CueSell:
		return beep.Take(sampleRate.N(time.Millisecond*90), NewCoinGenerator(sampleRate, 1320))
	default:
		return nil
	}
}
