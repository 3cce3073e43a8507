package game

import (
	"strings"
	"testing"

	"github.com/lixenwraith/kitty-run/input"
	"github.com/lixenwraith/kitty-run/status"
	"github.com/lixenwraith/kitty-run/vmath"
	"github.com/pixil98/go-testutil"
)

func TestNewSessionIsIdle(t *testing.T) {
	d := newRecordingDisplay()
	s := NewSession(DefaultRules(), vmath.NewFastRand(1), d, nil)

	testutil.AssertEqual(t, "phase", s.Phase(), PhaseIdle)
	testutil.AssertEqual(t, "running", s.Running(), false)
	testutil.AssertEqual(t, "start shown", d.shown[ScreenStart], true)
	testutil.AssertEqual(t, "no pickups yet", len(s.Pickups), 0)
}

func TestIdleTickDoesNothing(t *testing.T) {
	s := NewSession(DefaultRules(), nil, nil, nil)
	x := s.Player.X
	s.Tick(held(input.ActionRight))
	testutil.AssertEqual(t, "x", s.Player.X, x)
}

func TestConfirmStartsFromIdle(t *testing.T) {
	d := newRecordingDisplay()
	f := &recordingFeedback{}
	s := NewSession(DefaultRules(), vmath.NewFastRand(3), d, f)

	if !s.Confirm() {
		t.Fatal("Expected confirm to start the game")
	}

	testutil.AssertEqual(t, "phase", s.Phase(), PhaseActive)
	testutil.AssertEqual(t, "start hidden", d.shown[ScreenStart], false)
	testutil.AssertEqual(t, "score text", d.texts[FieldScore], "Score: 0")
	testutil.AssertEqual(t, "start cue", f.count(CueStart), 1)
	testutil.AssertEqual(t, "round", s.Round(), 1)
	assertFreshRound(t, s)
}

func TestConfirmIgnoredWhileActive(t *testing.T) {
	s, _, f := newActiveSession()
	s.Pickups = []Pickup{farPickup()}
	s.Score = 30

	if s.Confirm() {
		t.Error("Expected confirm to be ignored while active")
	}
	testutil.AssertEqual(t, "score kept", s.Score, 30)
	testutil.AssertEqual(t, "pickups kept", len(s.Pickups), 1)
	testutil.AssertEqual(t, "start cues", f.count(CueStart), 1)
}

func TestConfirmRestartsFromOver(t *testing.T) {
	s, d, _ := newActiveSession()
	s.Pickups = []Pickup{{X: 385, Y: 285, Width: 30, Height: 30}}
	s.Tick(held(input.ActionLeft))
	if !s.Over {
		t.Fatal("Expected single pickup collection to end the game")
	}
	s.Player.X, s.Player.Y = 0, 0

	if !s.Confirm() {
		t.Fatal("Expected confirm to restart")
	}

	testutil.AssertEqual(t, "phase", s.Phase(), PhaseActive)
	testutil.AssertEqual(t, "game over hidden", d.shown[ScreenGameOver], false)
	testutil.AssertEqual(t, "score text", d.texts[FieldScore], "Score: 0")
	testutil.AssertEqual(t, "round", s.Round(), 2)
	assertFreshRound(t, s)
}

func TestRestartRegeneratesPickups(t *testing.T) {
	s, _, _ := newActiveSession()
	first := append([]Pickup(nil), s.Pickups...)

	s.Active, s.Over = false, true
	s.Confirm()

	same := 0
	for i := range first {
		if first[i] == s.Pickups[i] {
			same++
		}
	}
	if same == len(first) {
		t.Error("Expected restart to place pickups at new positions")
	}
}

func TestSessionMetrics(t *testing.T) {
	reg := status.NewRegistry()
	s := NewSession(DefaultRules(), vmath.NewFastRand(5), nil, nil)
	s.SetMetrics(reg)
	testutil.AssertEqual(t, "idle phase", reg.Strings.Get(status.KeyPhase).Load(), "idle")

	s.Confirm()
	s.Pickups = []Pickup{{X: 385, Y: 285, Width: 30, Height: 30}, farPickup()}
	s.Tick(held())

	testutil.AssertEqual(t, "rounds", reg.Ints.Get(status.KeyRounds).Load(), int64(1))
	testutil.AssertEqual(t, "pickups", reg.Ints.Get(status.KeyPickups).Load(), int64(1))
	testutil.AssertEqual(t, "phase", reg.Strings.Get(status.KeyPhase).Load(), "active")
	testutil.AssertEqual(t, "speed", reg.Floats.Get(status.KeySpeed).Get(), 3.2)
}

func TestRulesValidate(t *testing.T) {
	if err := DefaultRules().Validate(); err != nil {
		t.Fatalf("Expected default rules to validate, got %v", err)
	}

	bad := DefaultRules()
	bad.PickupCount = 0
	bad.BaseSpeed = 0
	bad.CanvasWidth = 50

	err := bad.Validate()
	if err == nil {
		t.Fatal("Expected validation error")
	}
	for _, want := range []string{"pickup_count", "base_speed", "player_size"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected error to mention %q, got %q", want, err.Error())
		}
	}
}

func TestPhaseString(t *testing.T) {
	testutil.AssertEqual(t, "idle", PhaseIdle.String(), "idle")
	testutil.AssertEqual(t, "active", PhaseActive.String(), "active")
	testutil.AssertEqual(t, "over", PhaseOver.String(), "over")
}

func TestDirectionRows(t *testing.T) {
	testutil.AssertEqual(t, "up", DirUp.Row(), 0)
	testutil.AssertEqual(t, "right", DirRight.Row(), 1)
	testutil.AssertEqual(t, "down", DirDown.Row(), 2)
	testutil.AssertEqual(t, "left", DirLeft.Row(), 3)
}

// assertFreshRound checks the reset invariants of entering Active
func assertFreshRound(t *testing.T, s *Session) {
	t.Helper()
	testutil.AssertEqual(t, "score", s.Score, 0)
	testutil.AssertEqual(t, "speed", s.Player.Speed, 3.0)
	testutil.AssertEqual(t, "x", s.Player.X, 352.0)
	testutil.AssertEqual(t, "y", s.Player.Y, 252.0)
	testutil.AssertEqual(t, "frame x", s.Player.FrameX, 0)
	testutil.AssertEqual(t, "frame y", s.Player.FrameY, 2)
	testutil.AssertEqual(t, "pickup count", len(s.Pickups), 10)
	testutil.AssertEqual(t, "over", s.Over, false)

	for i, p := range s.Pickups {
		if p.Collected {
			t.Errorf("Pickup %d starts collected", i)
		}
		if p.X < 0 || p.X > 770 || p.Y < 0 || p.Y > 570 {
			t.Errorf("Pickup %d out of range at (%f, %f)", i, p.X, p.Y)
		}
		if p.Width != 30 || p.Height != 30 {
			t.Errorf("Pickup %d has size %fx%f", i, p.Width, p.Height)
		}
	}
}
