package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "KITTY_RUN_AUDIO_ENABLED"
	EnvMasterVolume = "KITTY_RUN_MASTER_VOLUME"
	EnvSFXVolumes   = "KITTY_RUN_SFX_VOLUMES"
	EnvSampleRate   = "KITTY_RUN_SAMPLE_RATE"
)

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()
	ApplyEnv(cfg)
	return cfg
}

// ApplyEnv overlays environment variables onto cfg
// Malformed values are ignored and the current value kept
func ApplyEnv(cfg *AudioConfig) {
	if cfg.EffectVolumes == nil {
		cfg.EffectVolumes = DefaultAudioConfig().EffectVolumes
	}

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100 in the environment, 0.0-1.0 internally
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = clampUnit(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
