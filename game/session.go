// Package game holds the session state machine, player movement and pickup scoring
// Everything here runs on the single tick goroutine; nothing is safe for concurrent use
package game

import (
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/lixenwraith/kitty-run/status"
	"github.com/lixenwraith/kitty-run/vmath"
)

// Phase is the externally visible session state
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseActive
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseOver:
		return "over"
	default:
		return "idle"
	}
}

// Session is the whole mutable game: player, pickups, score and the active/over flags
// Active and Over are tracked separately; updates run only while Active && !Over
type Session struct {
	Player  Player
	Pickups []Pickup
	Score   int
	Active  bool
	Over    bool

	rules    Rules
	rng      *vmath.FastRand
	display  Display
	feedback Feedback
	metrics  sessionMetrics

	frameTicks int
	round      int
	roundID    string
}

// NewSession creates an idle session and shows the start screen
// Nil display, feedback or rng fall back to no-op collaborators and a fixed seed
func NewSession(rules Rules, rng *vmath.FastRand, display Display, feedback Feedback) *Session {
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	if display == nil {
		display = NopDisplay{}
	}
	if feedback == nil {
		feedback = NopFeedback{}
	}

	s := &Session{
		Player:   newPlayer(rules),
		rules:    rules,
		rng:      rng,
		display:  display,
		feedback: feedback,
	}
	s.display.Show(ScreenStart)
	return s
}

// SetMetrics publishes session counters into reg
func (s *Session) SetMetrics(reg *status.Registry) {
	s.metrics = newSessionMetrics(reg)
	s.metrics.phase(s.Phase())
	s.metrics.speed(s.Player.Speed)
}

// Phase derives the state machine position from the flags
func (s *Session) Phase() Phase {
	switch {
	case s.Over:
		return PhaseOver
	case s.Active:
		return PhaseActive
	default:
		return PhaseIdle
	}
}

// Running reports whether ticks should update and render
func (s *Session) Running() bool {
	return s.Active && !s.Over
}

// Rules returns the rules the session was built with
func (s *Session) Rules() Rules {
	return s.rules
}

// Round returns how many times the session has entered Active
func (s *Session) Round() int {
	return s.round
}

// Confirm handles the confirm key: Idle starts, Over restarts, Active ignores it
// Returns true when a transition into Active happened
func (s *Session) Confirm() bool {
	switch s.Phase() {
	case PhaseIdle:
		s.display.Hide(ScreenStart)
		s.begin()
		return true
	case PhaseOver:
		s.display.Hide(ScreenGameOver)
		s.begin()
		return true
	default:
		return false
	}
}

// Tick runs one movement and collision step; no-op unless Running
func (s *Session) Tick(c Controls) {
	if !s.Running() {
		return
	}
	s.updatePlayer(c)
	s.checkCollisions()
}

// begin enters Active with a fresh player, score and pickup set
func (s *Session) begin() {
	s.Active = true
	s.Over = false
	s.Score = 0
	s.Player = newPlayer(s.rules)
	s.spawnPickups()

	s.round++
	s.roundID = uuid.NewString()

	s.display.SetText(FieldScore, ScoreText(s.Score))
	s.feedback.Play(CueStart)
	s.metrics.begin(s.Player.Speed)

	slog.Info("round started", "round", s.roundID, "number", s.round, "pickups", len(s.Pickups))
}

// end enters Over and surfaces the final score
func (s *Session) end() {
	s.Active = false
	s.Over = true

	s.display.SetText(FieldFinalScore, ScoreText(s.Score))
	s.display.Show(ScreenGameOver)
	s.feedback.Play(CueGameOver)
	s.metrics.phase(PhaseOver)

	slog.Info("round over", "round", s.roundID, "score", s.Score, "speed", s.Player.Speed)
}

// spawnPickups discards the old set and places PickupCount new ones inside the canvas
func (s *Session) spawnPickups() {
	r := s.rules
	s.Pickups = make([]Pickup, r.PickupCount)
	for i := range s.Pickups {
		s.Pickups[i] = Pickup{
			X:      s.rng.Float64() * (r.CanvasWidth - r.PickupSize),
			Y:      s.rng.Float64() * (r.CanvasHeight - r.PickupSize),
			Width:  r.PickupSize,
			Height: r.PickupSize,
		}
	}
}

// sessionMetrics caches registry pointers; zero value discards updates
type sessionMetrics struct {
	pickups   *atomic.Int64
	rounds    *atomic.Int64
	phaseName *status.AtomicString
	speedVal  *status.AtomicFloat
}

func newSessionMetrics(reg *status.Registry) sessionMetrics {
	if reg == nil {
		return sessionMetrics{}
	}
	return sessionMetrics{
		pickups:   reg.Ints.Get(status.KeyPickups),
		rounds:    reg.Ints.Get(status.KeyRounds),
		phaseName: reg.Strings.Get(status.KeyPhase),
		speedVal:  reg.Floats.Get(status.KeySpeed),
	}
}

func (m sessionMetrics) begin(speed float64) {
	if m.rounds == nil {
		return
	}
	m.rounds.Add(1)
	m.pickups.Store(0)
	m.phase(PhaseActive)
	m.speed(speed)
}

func (m sessionMetrics) pickup(speed float64) {
	if m.pickups == nil {
		return
	}
	m.pickups.Add(1)
	m.speed(speed)
}

func (m sessionMetrics) phase(p Phase) {
	if m.phaseName != nil {
		m.phaseName.Store(p.String())
	}
}

func (m sessionMetrics) speed(v float64) {
	if m.speedVal != nil {
		m.speedVal.Set(v)
	}
}
