package audio

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}

	expectedVolumes := map[SoundType]float64{
		SoundStart:    0.6,
		SoundPickup:   0.5,
		SoundGameOver: 1.0,
	}
	for soundType, expectedVol := range expectedVolumes {
		if vol, ok := cfg.EffectVolumes[soundType]; !ok {
			t.Errorf("Expected volume for sound type %s to be set", soundType)
		} else if vol != expectedVol {
			t.Errorf("Expected volume %f for sound type %s, got %f", expectedVol, soundType, vol)
		}
	}
}

// TestLoadAudioConfigDefaults verifies loading with no env vars
func TestLoadAudioConfigDefaults(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "")
	t.Setenv(EnvMasterVolume, "")
	t.Setenv(EnvSFXVolumes, "")
	t.Setenv(EnvSampleRate, "")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	testutil.AssertEqual(t, "enabled", cfg.Enabled, def.Enabled)
	testutil.AssertEqual(t, "master volume", cfg.MasterVolume, def.MasterVolume)
	testutil.AssertEqual(t, "sample rate", cfg.SampleRate, def.SampleRate)
}

// TestLoadAudioConfigEnabled verifies loading enabled flag
func TestLoadAudioConfigEnabled(t *testing.T) {
	testCases := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1", true},
		{"0", false},
		{"garbage", true},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv(EnvAudioEnabled, tc.value)
			cfg := LoadAudioConfig()
			if cfg.Enabled != tc.expected {
				t.Errorf("For value %q, expected Enabled=%v, got %v", tc.value, tc.expected, cfg.Enabled)
			}
		})
	}
}

// TestLoadAudioConfigVolume verifies master volume conversion and clamping
func TestLoadAudioConfigVolume(t *testing.T) {
	testCases := []struct {
		value    string
		expected float64
	}{
		{"0", 0},
		{"25", 0.25},
		{"100", 1},
		{"150", 1},
		{"-10", 0},
		{"loud", 0.5},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv(EnvMasterVolume, tc.value)
			cfg := LoadAudioConfig()
			if cfg.MasterVolume != tc.expected {
				t.Errorf("For value %q, expected volume %f, got %f", tc.value, tc.expected, cfg.MasterVolume)
			}
		})
	}
}

// TestLoadAudioConfigEffectVolumes verifies JSON effect volume parsing
func TestLoadAudioConfigEffectVolumes(t *testing.T) {
	t.Setenv(EnvSFXVolumes, `{"pickup": 0.9, "gameover": 2.0, "unknown": 0.1}`)

	cfg := LoadAudioConfig()

	testutil.AssertEqual(t, "pickup", cfg.EffectVolumes[SoundPickup], 0.9)
	testutil.AssertEqual(t, "gameover clamped", cfg.EffectVolumes[SoundGameOver], 1.0)
	testutil.AssertEqual(t, "start untouched", cfg.EffectVolumes[SoundStart], 0.6)
}

// TestLoadAudioConfigBadJSON keeps defaults for malformed effect volumes
func TestLoadAudioConfigBadJSON(t *testing.T) {
	t.Setenv(EnvSFXVolumes, `{pickup:`)
	cfg := LoadAudioConfig()
	testutil.AssertEqual(t, "pickup", cfg.EffectVolumes[SoundPickup], 0.5)
}

// TestLoadAudioConfigSampleRate verifies sample rate parsing
func TestLoadAudioConfigSampleRate(t *testing.T) {
	t.Setenv(EnvSampleRate, "48000")
	testutil.AssertEqual(t, "rate", LoadAudioConfig().SampleRate, 48000)

	t.Setenv(EnvSampleRate, "-1")
	testutil.AssertEqual(t, "rejected rate", LoadAudioConfig().SampleRate, 44100)
}
