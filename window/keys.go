package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/kitty-run/input"
)

type keyBinding struct {
	ebiten ebiten.Key
	key    input.Key
}

// keyBindings lists every physical key the window forwards, by browser key name
var keyBindings = []keyBinding{
	{ebiten.KeyArrowUp, input.KeyArrowUp},
	{ebiten.KeyArrowDown, input.KeyArrowDown},
	{ebiten.KeyArrowLeft, input.KeyArrowLeft},
	{ebiten.KeyArrowRight, input.KeyArrowRight},
	{ebiten.KeyW, input.KeyW},
	{ebiten.KeyA, input.KeyA},
	{ebiten.KeyS, input.KeyS},
	{ebiten.KeyD, input.KeyD},
	{ebiten.KeySpace, input.KeySpace},
	{ebiten.KeyP, input.KeyP},
	{ebiten.KeyEscape, input.KeyEscape},
}

// KeySource reports edge transitions for one update
type KeySource interface {
	JustPressed(ebiten.Key) bool
	JustReleased(ebiten.Key) bool
}

// ebitenKeys reads edges from ebiten's per-tick input state
type ebitenKeys struct{}

func (ebitenKeys) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }

// KeySink receives translated key transitions
type KeySink interface {
	KeyDown(input.Key)
	KeyUp(input.Key)
}

// pollKeys forwards this update's key transitions to sink in binding order
func pollKeys(src KeySource, sink KeySink) {
	for _, b := range keyBindings {
		if src.JustPressed(b.ebiten) {
			sink.KeyDown(b.key)
		}
		if src.JustReleased(b.ebiten) {
			sink.KeyUp(b.key)
		}
	}
}
