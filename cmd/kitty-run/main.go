// Command kitty-run plays the game in a terminal
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lixenwraith/kitty-run/audio"
	"github.com/lixenwraith/kitty-run/config"
	"github.com/lixenwraith/kitty-run/core"
	"github.com/lixenwraith/kitty-run/engine"
	"github.com/lixenwraith/kitty-run/game"
	"github.com/lixenwraith/kitty-run/input"
	"github.com/lixenwraith/kitty-run/render"
	"github.com/lixenwraith/kitty-run/status"
	"github.com/lixenwraith/kitty-run/terminal"
	"github.com/lixenwraith/kitty-run/vmath"
)

func main() {
	cfg, err := config.Load("kitty-run", os.Args[1:])
	var help *config.HelpError
	if errors.As(err, &help) {
		fmt.Fprint(os.Stderr, help.Usage)
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "kitty-run: %v\n", err)
		os.Exit(2)
	}

	logFile, err := core.SetupLogging(cfg.LogDir, cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kitty-run: %v (continuing without logs)\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	scr, err := terminal.Open(terminal.NewPalette(cfg.ColorMode), cfg.Rules.CanvasWidth, cfg.Rules.CanvasHeight)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashCleanup(scr.Fini)

	// Panics on this goroutine restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	reg := status.NewRegistry()
	sound := newSound(cfg)
	defer sound.Cleanup()

	session := game.NewSession(cfg.Rules, vmath.NewFastRand(cfg.ResolveSeed()), scr, sound)
	session.SetMetrics(reg)

	atlas := render.DefaultAtlas()
	atlas.Columns = cfg.Rules.SpriteColumns

	keys := input.NewHoldTracker(input.DefaultKeyMap())

	var driver *engine.Driver
	sched := engine.NewClockScheduler(nil, cfg.Tick(), func(now time.Time) {
		driver.Frame(now)
	}, reg)

	driver = engine.NewDriver(engine.DriverConfig{
		Session:  session,
		Keys:     keys,
		Renderer: render.NewOrchestrator(atlas),
		Surface:  scr,
		Display:  scr,
		Pauser:   sched,
		OnQuit:   sched.RequestStop,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched.Start(ctx)

	// Terminal events arrive on their own goroutine; everything touching the session is posted
	core.Go(func() {
		for {
			ev := scr.PollEvent()
			switch ev.Kind {
			case terminal.EventClosed:
				sched.RequestStop()
				return
			case terminal.EventResize:
				sched.Post(scr.Resize)
			case terminal.EventKey:
				k, when := ev.Key, ev.When
				sched.Post(func() {
					// Auto-repeats extend the hold without re-triggering one-shot actions
					if a, fresh := keys.PressAt(k, when); fresh {
						driver.Trigger(a)
					}
				})
			}
		}
	})

	<-sched.Done()
	sched.Stop()
	scr.Fini()

	slog.Info("exit", "score", session.Score, "rounds", session.Round(), "metrics", reg.Summary())
}

// newSound opens the speaker; failure leaves a silent manager
func newSound(cfg *config.Config) *audio.SoundManager {
	sound := audio.NewSoundManager(cfg.Audio)
	if cfg.Mute && !sound.IsMuted() {
		sound.ToggleMute()
	}
	if err := sound.Initialize(); err != nil {
		slog.Warn("audio unavailable, continuing without sound", "error", err)
	}
	return sound
}
