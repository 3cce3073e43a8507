package audio

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/kitty-run/constants"
	"github.com/lixenwraith/kitty-run/game"
)

// SoundManager plays game cues through a single speaker mixer
// Every method is safe to call before Initialize or after a failed Initialize
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
	played      atomic.Int64
}

// NewSoundManager creates a new sound manager; nil cfg uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer and closes the speaker
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

// Play implements game.Feedback
func (sm *SoundManager) Play(cue game.Cue) {
	switch cue {
	case game.CueStart:
		sm.PlaySound(SoundStart)
	case game.CuePickup:
		sm.PlaySound(SoundPickup)
	case game.CueGameOver:
		sm.PlaySound(SoundGameOver)
	}
}

// PlaySound queues a synthesized effect onto the mixer
func (sm *SoundManager) PlaySound(st SoundType) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := GetSoundEffect(st, sm.config)
	if streamer == nil {
		slog.Warn("unknown sound effect", "type", int(st))
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played.Add(1)
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// PlayedCount returns how many effects reached the mixer
func (sm *SoundManager) PlayedCount() int64 {
	return sm.played.Load()
}
