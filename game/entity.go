package game

// Player is the controlled sprite; X and Y are the top-left corner in canvas space
type Player struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Direction     Direction
	FrameX        int // animation column
	FrameY        int // animation row, follows Direction
	Moving        bool
}

// Center returns the midpoint used for collision distance
func (p *Player) Center() (float64, float64) {
	return p.X + p.Width/2, p.Y + p.Height/2
}

// Pickup is a collectible placed at a random canvas position
type Pickup struct {
	X, Y          float64
	Width, Height float64
	Collected     bool
}

func (p *Pickup) Center() (float64, float64) {
	return p.X + p.Width/2, p.Y + p.Height/2
}

// newPlayer returns the default pose: centered, facing down, base speed
func newPlayer(r Rules) Player {
	return Player{
		X:         r.CanvasWidth/2 - r.PlayerSize/2,
		Y:         r.CanvasHeight/2 - r.PlayerSize/2,
		Width:     r.PlayerSize,
		Height:    r.PlayerSize,
		Speed:     r.BaseSpeed,
		Direction: DirDown,
		FrameX:    0,
		FrameY:    DirDown.Row(),
	}
}
