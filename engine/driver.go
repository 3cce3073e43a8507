package engine

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/kitty-run/game"
	"github.com/lixenwraith/kitty-run/input"
	"github.com/lixenwraith/kitty-run/render"
)

// Keys is the held-key source the driver feeds and the session reads
type Keys interface {
	Press(input.Key) input.Action
	Release(input.Key)
	ActionHeld(input.Action) bool
	ReleaseExcept(input.Action) []input.Key
}

// Pauser gates frames; the terminal backend passes its ClockScheduler
type Pauser interface {
	Pause()
	Resume()
	IsPaused() bool
}

// DriverConfig wires the driver's collaborators; Session, Keys and Surface are required
type DriverConfig struct {
	Session  *game.Session
	Keys     Keys
	Renderer *render.Orchestrator
	Surface  render.Surface
	Display  game.Display
	Pauser   Pauser
	OnQuit   func()
}

// Driver owns the session and sequences input, update and render for each frame
type Driver struct {
	session  *game.Session
	keys     Keys
	renderer *render.Orchestrator
	surface  render.Surface
	display  game.Display
	pauser   Pauser
	onQuit   func()
}

// NewDriver creates a driver; optional collaborators get defaults
func NewDriver(cfg DriverConfig) *Driver {
	d := &Driver{
		session:  cfg.Session,
		keys:     cfg.Keys,
		renderer: cfg.Renderer,
		surface:  cfg.Surface,
		display:  cfg.Display,
		pauser:   cfg.Pauser,
		onQuit:   cfg.OnQuit,
	}
	if d.renderer == nil {
		d.renderer = render.NewOrchestrator(render.DefaultAtlas())
	}
	if d.display == nil {
		d.display = game.NopDisplay{}
	}
	if d.pauser == nil {
		d.pauser = &flagPauser{}
	}
	if d.onQuit == nil {
		d.onQuit = func() {}
	}
	return d
}

// Session exposes the owned session for read-only inspection
func (d *Driver) Session() *game.Session {
	return d.session
}

// KeyDown records a press and triggers its action
func (d *Driver) KeyDown(k input.Key) {
	d.Trigger(d.keys.Press(k))
}

// KeyUp records a release
func (d *Driver) KeyUp(k input.Key) {
	d.keys.Release(k)
}

// Trigger runs the one-shot effect of an action; movement actions have none
func (d *Driver) Trigger(a input.Action) {
	switch a {
	case input.ActionConfirm:
		if d.pauser.IsPaused() {
			return
		}
		if d.session.Confirm() {
			slog.Debug("session confirmed", "phase", d.session.Phase(), "round", d.session.Round())
		}
	case input.ActionPause:
		d.TogglePause()
	case input.ActionQuit:
		slog.Info("quit requested", "score", d.session.Score)
		d.onQuit()
	}
}

// TogglePause flips the pause state and shows or hides the paused overlay
// Held keys other than the pause key are dropped on pause so movement does not resume on its own
func (d *Driver) TogglePause() bool {
	if d.pauser.IsPaused() {
		d.pauser.Resume()
		d.display.Hide(game.ScreenPaused)
		return false
	}
	d.pauser.Pause()
	d.keys.ReleaseExcept(input.ActionPause)
	d.display.Show(game.ScreenPaused)
	return true
}

// Paused reports whether frames are currently gated
func (d *Driver) Paused() bool {
	return d.pauser.IsPaused()
}

// Frame runs one tick: expire emulated holds, update, then render
// Returns true when a frame was rendered
func (d *Driver) Frame(now time.Time) bool {
	if e, ok := d.keys.(interface{ Expire(time.Time) }); ok {
		e.Expire(now)
	}
	if d.pauser.IsPaused() || !d.session.Running() {
		return false
	}

	d.session.Tick(d.keys)
	d.renderer.RenderFrame(d.surface, d.session)
	return true
}

// flagPauser is the pause state for backends without a ClockScheduler
type flagPauser struct {
	paused bool
}

func (p *flagPauser) Pause()         { p.paused = true }
func (p *flagPauser) Resume()        { p.paused = false }
func (p *flagPauser) IsPaused() bool { return p.paused }
