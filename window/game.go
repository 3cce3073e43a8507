// Package window is the ebiten backend. Unlike a terminal it reports real key releases,
// so held keys come straight from the platform
package window

import (
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/kitty-run/engine"
	"github.com/lixenwraith/kitty-run/status"
)

// Game adapts the driver to ebiten's Update/Draw/Layout loop; one Update is one tick
type Game struct {
	driver  *engine.Driver
	surface *Surface
	display *Display
	images  *Images
	keys    KeySource
	now     func() time.Time

	width, height int
	quit          atomic.Bool
	statTicks     *atomic.Int64
	statPaused    *atomic.Int64
}

// GameConfig wires a Game; Keys and Now default to ebiten input and the wall clock
type GameConfig struct {
	Driver  *engine.Driver
	Surface *Surface
	Display *Display
	Images  *Images
	Keys    KeySource
	Now     func() time.Time
	Width   int
	Height  int
	Metrics *status.Registry
}

func NewGame(cfg GameConfig) *Game {
	g := &Game{
		driver:  cfg.Driver,
		surface: cfg.Surface,
		display: cfg.Display,
		images:  cfg.Images,
		keys:    cfg.Keys,
		now:     cfg.Now,
		width:   cfg.Width,
		height:  cfg.Height,
	}
	if g.keys == nil {
		g.keys = ebitenKeys{}
	}
	if g.now == nil {
		g.now = time.Now
	}
	reg := cfg.Metrics
	if reg == nil {
		reg = status.NewRegistry()
	}
	g.statTicks = reg.Ints.Get(status.KeyTicks)
	g.statPaused = reg.Ints.Get(status.KeyPausedTicks)
	return g
}

// Quit makes the next Update end the run loop
func (g *Game) Quit() {
	g.quit.Store(true)
}

func (g *Game) Update() error {
	if g.quit.Load() {
		return ebiten.Termination
	}

	pollKeys(g.keys, g.driver)
	if g.driver.Paused() {
		g.statPaused.Add(1)
	} else {
		g.statTicks.Add(1)
	}
	g.driver.Frame(g.now())

	if g.quit.Load() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(fieldColor)
	g.surface.Replay(screen, g.images)
	g.display.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window ticking at the rate closest to tick and blocks until quit or close
func (g *Game) Run(title string, tick time.Duration) error {
	ebiten.SetTPS(max(int(time.Second/tick), 1))
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetScreenClearedEveryFrame(true)
	return ebiten.RunGame(g)
}
