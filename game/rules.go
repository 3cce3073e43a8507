package game

import (
	"fmt"

	"github.com/pixil98/go-errors"

	"github.com/lixenwraith/kitty-run/constants"
)

// Rules are the tunable numbers of a session
type Rules struct {
	CanvasWidth     float64 `json:"canvas_width"`
	CanvasHeight    float64 `json:"canvas_height"`
	PlayerSize      float64 `json:"player_size"`
	BaseSpeed       float64 `json:"base_speed"`
	SpeedBoost      float64 `json:"speed_boost"`
	PickupCount     int     `json:"pickup_count"`
	PickupSize      float64 `json:"pickup_size"`
	PointsPerPickup int     `json:"points_per_pickup"`
	FrameDelay      int     `json:"frame_delay"`
	SpriteColumns   int     `json:"sprite_columns"`
}

// DefaultRules returns the stock 800x600 game with ten pickups
func DefaultRules() Rules {
	return Rules{
		CanvasWidth:     constants.CanvasWidth,
		CanvasHeight:    constants.CanvasHeight,
		PlayerSize:      constants.PlayerSize,
		BaseSpeed:       constants.PlayerSpeed,
		SpeedBoost:      constants.SpeedBoost,
		PickupCount:     constants.PickupCount,
		PickupSize:      constants.PickupSize,
		PointsPerPickup: constants.PointsPerPickup,
		FrameDelay:      constants.FrameDelay,
		SpriteColumns:   constants.SpriteGridSize,
	}
}

// Validate reports every rule violation at once
func (r Rules) Validate() error {
	el := errors.NewErrorList()

	if r.PlayerSize <= 0 {
		el.Add(fmt.Errorf("player_size must be positive"))
	}
	if r.PickupSize <= 0 {
		el.Add(fmt.Errorf("pickup_size must be positive"))
	}
	if r.CanvasWidth <= r.PlayerSize || r.CanvasHeight <= r.PlayerSize {
		el.Add(fmt.Errorf("canvas %gx%g must be larger than player_size %g", r.CanvasWidth, r.CanvasHeight, r.PlayerSize))
	}
	if r.CanvasWidth <= r.PickupSize || r.CanvasHeight <= r.PickupSize {
		el.Add(fmt.Errorf("canvas %gx%g must be larger than pickup_size %g", r.CanvasWidth, r.CanvasHeight, r.PickupSize))
	}
	if r.PickupCount < 1 {
		el.Add(fmt.Errorf("pickup_count must be at least 1"))
	}
	if r.BaseSpeed <= 0 {
		el.Add(fmt.Errorf("base_speed must be positive"))
	}
	if r.SpeedBoost < 0 {
		el.Add(fmt.Errorf("speed_boost must not be negative"))
	}
	if r.PointsPerPickup < 0 {
		el.Add(fmt.Errorf("points_per_pickup must not be negative"))
	}
	if r.FrameDelay < 1 {
		el.Add(fmt.Errorf("frame_delay must be at least 1"))
	}
	if r.SpriteColumns < 1 {
		el.Add(fmt.Errorf("sprite_columns must be at least 1"))
	}

	return el.Err()
}
