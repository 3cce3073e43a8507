// Package config layers defaults, a JSON file, environment variables and flags
// into one validated Config
package config

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"

	"github.com/lixenwraith/kitty-run/audio"
	"github.com/lixenwraith/kitty-run/constants"
	"github.com/lixenwraith/kitty-run/game"
)

// ColorMode selects the terminal palette
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorTrue
	Color256
)

func (cm ColorMode) String() string {
	switch cm {
	case ColorTrue:
		return "truecolor"
	case Color256:
		return "256"
	default:
		return "auto"
	}
}

func (cm *ColorMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "auto":
		*cm = ColorAuto
	case "truecolor", "true", "24bit":
		*cm = ColorTrue
	case "256":
		*cm = Color256
	default:
		return fmt.Errorf("unknown color mode: %s", text)
	}
	return nil
}

func (cm ColorMode) MarshalText() ([]byte, error) {
	return []byte(cm.String()), nil
}

// Duration is a time.Duration read from JSON as a Go duration string
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

type Config struct {
	Rules        game.Rules         `json:"rules"`
	Audio        *audio.AudioConfig `json:"audio"`
	TickInterval Duration           `json:"tick_interval"`
	Seed         uint64             `json:"seed"`
	ColorMode    ColorMode          `json:"color_mode"`
	AtlasPath    string             `json:"atlas_path,omitempty"`
	Mute         bool               `json:"mute"`
	Debug        bool               `json:"debug"`
	LogDir       string             `json:"log_dir"`
}

// Default returns the stock game. Seed 0 means seed from the clock at startup
func Default() *Config {
	return &Config{
		Rules:        game.DefaultRules(),
		Audio:        audio.DefaultAudioConfig(),
		TickInterval: Duration(constants.TickInterval),
		ColorMode:    ColorAuto,
		LogDir:       "logs",
	}
}

// Tick returns the tick interval as a time.Duration
func (c *Config) Tick() time.Duration {
	return time.Duration(c.TickInterval)
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if err := c.Rules.Validate(); err != nil {
		el.Add(fmt.Errorf("rules: %w", err))
	}
	if c.Tick() < constants.MinTickInterval {
		el.Add(fmt.Errorf("tick_interval must be at least %s", constants.MinTickInterval))
	}
	if c.Audio == nil {
		el.Add(fmt.Errorf("audio section is required"))
	} else {
		if c.Audio.SampleRate <= 0 {
			el.Add(fmt.Errorf("audio sample_rate must be positive"))
		}
		if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
			el.Add(fmt.Errorf("audio master_volume must be within [0, 1]"))
		}
	}
	if c.LogDir == "" {
		el.Add(fmt.Errorf("log_dir is required"))
	}

	return el.Err()
}

// ResolveSeed returns the configured seed or a clock-derived one when unset
func (c *Config) ResolveSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}
