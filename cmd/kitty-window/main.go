// Command kitty-window plays the game in a desktop window
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/lixenwraith/kitty-run/audio"
	"github.com/lixenwraith/kitty-run/config"
	"github.com/lixenwraith/kitty-run/constants"
	"github.com/lixenwraith/kitty-run/core"
	"github.com/lixenwraith/kitty-run/engine"
	"github.com/lixenwraith/kitty-run/game"
	"github.com/lixenwraith/kitty-run/input"
	"github.com/lixenwraith/kitty-run/render"
	"github.com/lixenwraith/kitty-run/status"
	"github.com/lixenwraith/kitty-run/vmath"
	"github.com/lixenwraith/kitty-run/window"
)

func main() {
	cfg, err := config.Load("kitty-window", os.Args[1:])
	var help *config.HelpError
	if errors.As(err, &help) {
		fmt.Fprint(os.Stderr, help.Usage)
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "kitty-window: %v\n", err)
		os.Exit(2)
	}

	logFile, err := core.SetupLogging(cfg.LogDir, cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kitty-window: %v (continuing without logs)\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	atlas := render.DefaultAtlas()
	atlas.Columns = cfg.Rules.SpriteColumns

	images, err := window.LoadImages(cfg.AtlasPath, atlas, cfg.Rules.PickupSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kitty-window: %v\n", err)
		os.Exit(1)
	}

	sound := audio.NewSoundManager(cfg.Audio)
	if cfg.Mute && !sound.IsMuted() {
		sound.ToggleMute()
	}
	if err := sound.Initialize(); err != nil {
		slog.Warn("audio unavailable, continuing without sound", "error", err)
	}
	defer sound.Cleanup()

	reg := status.NewRegistry()
	surface := window.NewSurface()
	display := window.NewDisplay(cfg.Rules.CanvasWidth, cfg.Rules.CanvasHeight)

	session := game.NewSession(cfg.Rules, vmath.NewFastRand(cfg.ResolveSeed()), display, sound)
	session.SetMetrics(reg)

	var g *window.Game
	driver := engine.NewDriver(engine.DriverConfig{
		Session:  session,
		Keys:     input.NewTracker(input.DefaultKeyMap()),
		Renderer: render.NewOrchestrator(atlas),
		Surface:  surface,
		Display:  display,
		OnQuit:   func() { g.Quit() },
	})

	g = window.NewGame(window.GameConfig{
		Driver:  driver,
		Surface: surface,
		Display: display,
		Images:  images,
		Width:   int(cfg.Rules.CanvasWidth),
		Height:  int(cfg.Rules.CanvasHeight),
		Metrics: reg,
	})

	if err := g.Run(constants.TitleText, cfg.Tick()); err != nil {
		slog.Error("window closed with error", "error", err)
		fmt.Fprintf(os.Stderr, "kitty-window: %v\n", err)
		os.Exit(1)
	}

	slog.Info("exit", "score", session.Score, "rounds", session.Round(), "metrics", reg.Summary())
}
