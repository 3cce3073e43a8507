package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/kitty-run/audio"
)

// Environment variables read by Load, on top of the audio package's own
const (
	EnvSeed      = "KITTY_RUN_SEED"
	EnvTick      = "KITTY_RUN_TICK"
	EnvColorMode = "KITTY_RUN_COLOR"
	EnvAtlas     = "KITTY_RUN_ATLAS"
	EnvDebug     = "KITTY_RUN_DEBUG"
)

// HelpError is returned by Load for -h or -help; Usage holds the flag defaults
type HelpError struct {
	Usage string
}

func (e *HelpError) Error() string { return flag.ErrHelp.Error() }

func (e *HelpError) Unwrap() error { return flag.ErrHelp }

// Load builds a Config from defaults, then the -config file, then the
// environment, then the remaining flags. args excludes the program name
func Load(name string, args []string) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		path      = fs.String("config", "", "JSON config file")
		debug     = fs.Bool("debug", false, "Write debug logs")
		seed      = fs.Uint64("seed", 0, "Pickup placement seed, 0 for time-based")
		tick      = fs.Duration("tick", 0, "Tick interval")
		pickups   = fs.Int("pickups", 0, "Pickups per round")
		speed     = fs.Float64("speed", 0, "Base player speed")
		colorMode = fs.String("color", "", "Color mode: auto, truecolor, 256")
		atlas     = fs.String("atlas", "", "Sprite atlas PNG (window only)")
		mute      = fs.Bool("mute", false, "Start with audio muted")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			var b strings.Builder
			fmt.Fprintf(&b, "Usage of %s:\n", name)
			fs.SetOutput(&b)
			fs.PrintDefaults()
			return nil, &HelpError{Usage: b.String()}
		}
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	cfg := Default()

	if *path != "" {
		if err := cfg.readFile(*path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	// Only flags given on the command line override earlier layers
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debug
		case "seed":
			cfg.Seed = *seed
		case "tick":
			cfg.TickInterval = Duration(*tick)
		case "pickups":
			cfg.Rules.PickupCount = *pickups
		case "speed":
			cfg.Rules.BaseSpeed = *speed
		case "color":
			if err := cfg.ColorMode.UnmarshalText([]byte(*colorMode)); err != nil {
				flagErr = fmt.Errorf("flag -color: %w", err)
			}
		case "atlas":
			cfg.AtlasPath = *atlas
		case "mute":
			cfg.Mute = *mute
		}
	})
	if flagErr != nil {
		return nil, flagErr
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %q: %w", path, err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %q: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if c.Audio != nil {
		audio.ApplyEnv(c.Audio)
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvTick); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvTick, err)
		}
		c.TickInterval = Duration(d)
	}
	if v := os.Getenv(EnvColorMode); v != "" {
		if err := c.ColorMode.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("parsing %s: %w", EnvColorMode, err)
		}
	}
	if v := os.Getenv(EnvAtlas); v != "" {
		c.AtlasPath = v
	}
	if v := os.Getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvDebug, err)
		}
		c.Debug = debug
	}
	return nil
}
