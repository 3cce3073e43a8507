package game

import (
	"fmt"

	"github.com/lixenwraith/kitty-run/constants"
	"github.com/lixenwraith/kitty-run/vmath"
)

// checkCollisions collects every uncollected pickup overlapping the player
// Returns the number collected this tick
func (s *Session) checkCollisions() int {
	px, py := s.Player.Center()
	pr := s.Player.Width / 2
	collected := 0

	for i := range s.Pickups {
		pu := &s.Pickups[i]
		if pu.Collected {
			continue
		}
		cx, cy := pu.Center()
		if !vmath.CirclesOverlap(px, py, pr, cx, cy, pu.Width/2) {
			continue
		}

		pu.Collected = true
		s.Score += s.rules.PointsPerPickup
		s.Player.Speed += s.rules.SpeedBoost
		collected++

		s.display.SetText(FieldScore, ScoreText(s.Score))
		s.feedback.Play(CuePickup)
		s.metrics.pickup(s.Player.Speed)
	}

	if collected > 0 && s.allCollected() {
		s.end()
	}
	return collected
}

func (s *Session) allCollected() bool {
	for i := range s.Pickups {
		if !s.Pickups[i].Collected {
			return false
		}
	}
	return true
}

// Remaining counts uncollected pickups
func (s *Session) Remaining() int {
	n := 0
	for i := range s.Pickups {
		if !s.Pickups[i].Collected {
			n++
		}
	}
	return n
}

// ScoreText formats a score for the score and final score fields
func ScoreText(score int) string {
	return fmt.Sprintf(constants.ScoreTextPattern, score)
}
