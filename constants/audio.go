package constants

import "time"

// Audio Engine
const (
	// AudioBufferDuration is the speaker buffer length passed to speaker.Init
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultSampleRate is used when no sample rate is configured
	DefaultSampleRate = 44100
)

// Start Sound Timing
const (
	StartSoundDuration = 300 * time.Millisecond
	StartSoundAttack   = 150 * time.Millisecond
	StartSoundRelease  = 150 * time.Millisecond
)

// Pickup Sound Timing
const (
	PickupSoundNote1Duration = 80 * time.Millisecond
	PickupSoundNote2Duration = 280 * time.Millisecond
	PickupSoundAttack        = 5 * time.Millisecond
	PickupSoundNote1Release  = 40 * time.Millisecond
	PickupSoundNote2Release  = 200 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverSoundDuration           = 600 * time.Millisecond
	GameOverSoundAttack             = 5 * time.Millisecond
	GameOverSoundFundamentalRelease = 550 * time.Millisecond
	GameOverSoundOvertoneRelease    = 200 * time.Millisecond
)
