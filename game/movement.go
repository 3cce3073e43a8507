package game

import (
	"github.com/lixenwraith/kitty-run/input"
	"github.com/lixenwraith/kitty-run/vmath"
)

// Controls answers whether a movement action is held this tick
type Controls interface {
	ActionHeld(input.Action) bool
}

type movementStep struct {
	action    input.Action
	direction Direction
	dx, dy    float64
}

// movementOrder is fixed: when opposing keys are held the later entry sets the facing
var movementOrder = [...]movementStep{
	{input.ActionUp, DirUp, 0, -1},
	{input.ActionDown, DirDown, 0, 1},
	{input.ActionLeft, DirLeft, -1, 0},
	{input.ActionRight, DirRight, 1, 0},
}

// updatePlayer applies held directions, clamps to the canvas and advances the animation
func (s *Session) updatePlayer(c Controls) {
	p := &s.Player
	p.Moving = false

	for _, step := range movementOrder {
		if !c.ActionHeld(step.action) {
			continue
		}
		p.X += step.dx * p.Speed
		p.Y += step.dy * p.Speed
		p.Moving = true
		p.Direction = step.direction
		p.FrameY = step.direction.Row()
	}

	p.X = vmath.Clamp(p.X, 0, s.rules.CanvasWidth-p.Width)
	p.Y = vmath.Clamp(p.Y, 0, s.rules.CanvasHeight-p.Height)

	// Counter keeps running while idle and survives restarts
	s.frameTicks++
	if p.Moving && s.frameTicks >= s.rules.FrameDelay {
		p.FrameX = (p.FrameX + 1) % s.rules.SpriteColumns
		s.frameTicks = 0
	}
}
