package constants

// Canvas
const (
	CanvasWidth  = 800
	CanvasHeight = 600
)

// Player
const (
	// PlayerSize is the displayed width and height of the player sprite
	PlayerSize = 96

	// PlayerSpeed is the base movement in canvas units per tick
	PlayerSpeed = 3.0

	// SpeedBoost is added to player speed for every pickup collected
	SpeedBoost = 0.2
)

// Pickups
const (
	PickupCount      = 10
	PickupSize       = 30
	PointsPerPickup  = 10
	ScoreTextPattern = "Score: %d"
)

// Sprite Atlas
const (
	// SpriteGridSize is the number of columns (animation phases) and rows (directions)
	SpriteGridSize = 4

	// SpriteCellSize is the pixel size of one atlas cell
	SpriteCellSize = 192

	// FrameDelay is the number of ticks between animation column advances
	FrameDelay = 5
)

// Animation rows by facing direction
const (
	RowUp    = 0
	RowRight = 1
	RowDown  = 2
	RowLeft  = 3
)
