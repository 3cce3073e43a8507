package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lixenwraith/kitty-run/game"
	"github.com/lixenwraith/kitty-run/input"
	"github.com/lixenwraith/kitty-run/vmath"
	"github.com/pixil98/go-testutil"
)

type drawCall struct {
	sprite   Sprite
	src, dst Rect
}

// recordingSurface captures the draw sequence of one frame
type recordingSurface struct {
	ops   []string
	draws []drawCall
}

func (s *recordingSurface) Clear()   { s.ops = append(s.ops, "clear") }
func (s *recordingSurface) Present() { s.ops = append(s.ops, "present") }
func (s *recordingSurface) Draw(sprite Sprite, src, dst Rect) {
	s.ops = append(s.ops, "draw")
	s.draws = append(s.draws, drawCall{sprite, src, dst})
}

type hiddenLayer struct{ drawn *bool }

func (h hiddenLayer) Render(Surface, *game.Session) { *h.drawn = true }
func (h hiddenLayer) IsVisible() bool               { return false }

type noControls struct{}

func (noControls) ActionHeld(input.Action) bool { return false }

func TestAtlasCell(t *testing.T) {
	a := DefaultAtlas()
	tests := []struct {
		row, col int
		expected Rect
	}{
		{0, 0, Rect{0, 0, 192, 192}},
		{2, 0, Rect{0, 384, 192, 192}},
		{3, 1, Rect{192, 576, 192, 192}},
		{1, 3, Rect{576, 192, 192, 192}},
		{0, 4, Rect{0, 0, 192, 192}},
		{-1, 0, Rect{0, 576, 192, 192}},
	}
	for _, tt := range tests {
		if got := a.Cell(tt.row, tt.col); got != tt.expected {
			t.Errorf("Cell(%d,%d): expected %+v, got %+v", tt.row, tt.col, tt.expected, got)
		}
	}

	w, h := a.Size()
	testutil.AssertEqual(t, "sheet width", w, 768.0)
	testutil.AssertEqual(t, "sheet height", h, 768.0)
}

func TestRenderFrameOrder(t *testing.T) {
	s := game.NewSession(game.DefaultRules(), vmath.NewFastRand(4), nil, nil)
	s.Confirm()
	s.Pickups = []game.Pickup{
		{X: 10, Y: 20, Width: 30, Height: 30},
		{X: 50, Y: 60, Width: 30, Height: 30, Collected: true},
		{X: 700, Y: 500, Width: 30, Height: 30},
	}

	surface := &recordingSurface{}
	NewOrchestrator(DefaultAtlas()).RenderFrame(surface, s)

	testutil.AssertEqual(t, "op count", len(surface.ops), 5)
	testutil.AssertEqual(t, "first op", surface.ops[0], "clear")
	testutil.AssertEqual(t, "last op", surface.ops[4], "present")
	testutil.AssertEqual(t, "draw count", len(surface.draws), 3)

	testutil.AssertEqual(t, "pickup 1", surface.draws[0], drawCall{SpritePickup, Rect{0, 0, 30, 30}, Rect{10, 20, 30, 30}}, cmp.AllowUnexported(drawCall{}))
	testutil.AssertEqual(t, "pickup 3", surface.draws[1], drawCall{SpritePickup, Rect{0, 0, 30, 30}, Rect{700, 500, 30, 30}}, cmp.AllowUnexported(drawCall{}))

	// Default pose draws row 2 (down), column 0 into a 96 square
	testutil.AssertEqual(t, "player", surface.draws[2], drawCall{SpritePlayer, Rect{0, 384, 192, 192}, Rect{352, 252, 96, 96}}, cmp.AllowUnexported(drawCall{}))
}

func TestPlayerFrameFollowsAnimation(t *testing.T) {
	s := game.NewSession(game.DefaultRules(), vmath.NewFastRand(4), nil, nil)
	s.Confirm()
	s.Player.FrameX = 2
	s.Player.FrameY = 3

	surface := &recordingSurface{}
	NewPlayerRenderer(DefaultAtlas()).Render(surface, s)

	testutil.AssertEqual(t, "src", surface.draws[0].src, Rect{384, 576, 192, 192})
}

func TestHiddenLayerSkipped(t *testing.T) {
	s := game.NewSession(game.DefaultRules(), nil, nil, nil)
	s.Tick(noControls{})

	drawn := false
	o := NewOrchestrator(DefaultAtlas())
	o.Register(hiddenLayer{&drawn}, PriorityOverlay)
	o.RenderFrame(&recordingSurface{}, s)

	if drawn {
		t.Error("Expected hidden layer to be skipped")
	}
}

func TestRegisterKeepsPriorityOrder(t *testing.T) {
	o := &Orchestrator{}
	o.Register(PickupRenderer{}, PriorityPlayer)
	o.Register(PlayerRenderer{}, PriorityBackground)
	o.Register(PickupRenderer{}, PriorityPlayer)

	testutil.AssertEqual(t, "first", o.renderers[0].priority, PriorityBackground)
	testutil.AssertEqual(t, "second index", o.renderers[1].index, 0)
	testutil.AssertEqual(t, "third index", o.renderers[2].index, 2)
}
