// Package audio synthesizes the game's sound cues and plays them through beep's speaker
package audio

import "github.com/lixenwraith/kitty-run/constants"

// SoundType represents different sound effects
type SoundType int

const (
	SoundStart    SoundType = iota // Round start whoosh
	SoundPickup                    // Pickup collected chime
	SoundGameOver                  // Final bell
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundStart:    "start",
	SoundPickup:   "pickup",
	SoundGameOver: "gameover",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// AudioConfig holds volume and device settings
type AudioConfig struct {
	Enabled       bool                  `json:"enabled"`
	MasterVolume  float64               `json:"master_volume"`
	EffectVolumes map[SoundType]float64 `json:"-"`
	SampleRate    int                   `json:"sample_rate"`
}

// DefaultAudioConfig returns audio enabled at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundStart:    0.6,
			SoundPickup:   0.5,
			SoundGameOver: 1.0,
		},
		SampleRate: constants.DefaultSampleRate,
	}
}
