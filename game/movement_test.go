package game

import (
	"math"
	"testing"

	"github.com/lixenwraith/kitty-run/input"
	"github.com/lixenwraith/kitty-run/vmath"
	"github.com/pixil98/go-testutil"
)

func TestMovementSingleDirections(t *testing.T) {
	tests := []struct {
		name      string
		action    input.Action
		dx, dy    float64
		direction Direction
		row       int
	}{
		{"up", input.ActionUp, 0, -3, DirUp, 0},
		{"right", input.ActionRight, 3, 0, DirRight, 1},
		{"down", input.ActionDown, 0, 3, DirDown, 2},
		{"left", input.ActionLeft, -3, 0, DirLeft, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newActiveSession()
			s.Pickups = []Pickup{farPickup()}
			x0, y0 := s.Player.X, s.Player.Y

			s.Tick(held(tt.action))

			testutil.AssertEqual(t, "x", s.Player.X, x0+tt.dx)
			testutil.AssertEqual(t, "y", s.Player.Y, y0+tt.dy)
			testutil.AssertEqual(t, "direction", s.Player.Direction, tt.direction)
			testutil.AssertEqual(t, "row", s.Player.FrameY, tt.row)
			testutil.AssertEqual(t, "moving", s.Player.Moving, true)
		})
	}
}

func TestMovementConflictingKeysLastWins(t *testing.T) {
	tests := []struct {
		name    string
		actions []input.Action
		row     int
		dx, dy  float64
	}{
		// Iteration order is up, down, left, right
		{"up and down", []input.Action{input.ActionUp, input.ActionDown}, 2, 0, 0},
		{"left and right", []input.Action{input.ActionLeft, input.ActionRight}, 1, 0, 0},
		{"up and left", []input.Action{input.ActionUp, input.ActionLeft}, 3, -3, -3},
		{"down and right", []input.Action{input.ActionDown, input.ActionRight}, 1, 3, 3},
		{"all four", []input.Action{input.ActionUp, input.ActionDown, input.ActionLeft, input.ActionRight}, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newActiveSession()
			s.Pickups = []Pickup{farPickup()}
			x0, y0 := s.Player.X, s.Player.Y

			s.Tick(held(tt.actions...))

			testutil.AssertEqual(t, "row", s.Player.FrameY, tt.row)
			testutil.AssertEqual(t, "x", s.Player.X, x0+tt.dx)
			testutil.AssertEqual(t, "y", s.Player.Y, y0+tt.dy)
		})
	}
}

func TestMovementIdleClearsMoving(t *testing.T) {
	s, _, _ := newActiveSession()
	s.Pickups = []Pickup{farPickup()}

	s.Tick(held(input.ActionLeft))
	s.Tick(held())

	testutil.AssertEqual(t, "moving", s.Player.Moving, false)
	testutil.AssertEqual(t, "row kept", s.Player.FrameY, 3)
}

func TestMovementStaysInBounds(t *testing.T) {
	s, _, _ := newActiveSession()
	s.Pickups = []Pickup{{X: -1000, Y: -1000, Width: 30, Height: 30}}
	s.Player.Speed = 37.5

	rng := vmath.NewFastRand(99)
	all := []input.Action{input.ActionUp, input.ActionDown, input.ActionLeft, input.ActionRight}

	for i := 0; i < 5000; i++ {
		h := heldActions{}
		for _, a := range all {
			if rng.Next()&1 == 0 {
				h[a] = true
			}
		}
		s.Tick(h)

		if s.Player.X < 0 || s.Player.X > 704 || s.Player.Y < 0 || s.Player.Y > 504 {
			t.Fatalf("Tick %d: player out of bounds at (%f, %f)", i, s.Player.X, s.Player.Y)
		}
	}
}

func TestMovementClampsAtEdges(t *testing.T) {
	s, _, _ := newActiveSession()
	s.Pickups = []Pickup{{X: 770, Y: 570, Width: 30, Height: 30}}
	s.Player.X, s.Player.Y = 1, 502

	s.Tick(held(input.ActionLeft, input.ActionDown))

	testutil.AssertEqual(t, "x", s.Player.X, 0.0)
	testutil.AssertEqual(t, "y", s.Player.Y, 504.0)
}

func TestAnimationAdvancesEveryFiveMovingTicks(t *testing.T) {
	s, _, _ := newActiveSession()
	s.Pickups = []Pickup{farPickup()}
	s.frameTicks = 0

	var frames []int
	for i := 0; i < 20; i++ {
		dir := input.ActionLeft
		if i%2 == 1 {
			dir = input.ActionRight
		}
		s.Tick(held(dir))
		frames = append(frames, s.Player.FrameX)
	}

	expected := []int{0, 0, 0, 0, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3, 0}
	for i := range expected {
		if frames[i] != expected[i] {
			t.Fatalf("Tick %d: expected frame %d, got %d (all: %v)", i, expected[i], frames[i], frames)
		}
	}
}

func TestAnimationCounterRunsWhileIdle(t *testing.T) {
	s, _, _ := newActiveSession()
	s.Pickups = []Pickup{farPickup()}
	s.frameTicks = 0

	// Three moving ticks, then idle long enough to pass the delay
	for i := 0; i < 3; i++ {
		s.Tick(held(input.ActionLeft, input.ActionRight))
	}
	for i := 0; i < 4; i++ {
		s.Tick(held())
	}
	testutil.AssertEqual(t, "frame while idle", s.Player.FrameX, 0)

	// First moving tick after the pause advances immediately
	s.Tick(held(input.ActionLeft, input.ActionRight))
	testutil.AssertEqual(t, "frame on resume", s.Player.FrameX, 1)
	testutil.AssertEqual(t, "counter reset", s.frameTicks, 0)
}

func TestAnimationCounterSurvivesRestart(t *testing.T) {
	s, _, _ := newActiveSession()
	s.Pickups = []Pickup{farPickup()}
	s.frameTicks = 0
	s.Tick(held())
	s.Tick(held())

	s.Over = true
	s.Active = false
	s.Confirm()

	testutil.AssertEqual(t, "frame ticks preserved", s.frameTicks, 2)
	testutil.AssertEqual(t, "frame reset", s.Player.FrameX, 0)
}

func TestDiagonalIsNotNormalized(t *testing.T) {
	s, _, _ := newActiveSession()
	s.Pickups = []Pickup{farPickup()}
	x0, y0 := s.Player.X, s.Player.Y

	s.Tick(held(input.ActionUp, input.ActionRight))

	moved := math.Hypot(s.Player.X-x0, s.Player.Y-y0)
	if math.Abs(moved-3*math.Sqrt2) > 1e-9 {
		t.Errorf("Expected diagonal step %f, got %f", 3*math.Sqrt2, moved)
	}
}
