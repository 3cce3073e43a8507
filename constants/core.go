package constants

import "time"

// Game Loop Timing
const (
	// TickInterval is the update+render interval, one display refresh at ~60 FPS
	TickInterval = 16 * time.Millisecond

	// MinTickInterval is the smallest accepted configured tick interval
	MinTickInterval = time.Millisecond

	// MaxTicksBehind bounds drift correction; further behind resets the deadline
	MaxTicksBehind = 2
)

// Terminal Input Timing
const (
	// KeyFirstRepeatWindow covers the terminal auto-repeat delay after the first press
	KeyFirstRepeatWindow = 550 * time.Millisecond

	// KeyRepeatWindow is how long a key stays held after an auto-repeat event
	KeyRepeatWindow = 120 * time.Millisecond

	// EventQueueSize is the capacity of the scheduler mailbox
	EventQueueSize = 128
)
