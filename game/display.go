package game

// Screen is an overlay toggled by the session state machine
type Screen uint8

const (
	ScreenStart Screen = iota
	ScreenGameOver
	ScreenPaused
)

// Field is a text sink updated by the session
type Field uint8

const (
	FieldScore Field = iota
	FieldFinalScore
)

// Display is the screen collaborator: overlays plus score text
// Backends implement it; the session never draws directly
type Display interface {
	Show(Screen)
	Hide(Screen)
	SetText(Field, string)
}

// Cue names a moment worth audible feedback
type Cue uint8

const (
	CueStart Cue = iota
	CuePickup
	CueGameOver
)

// Feedback receives cues; implementations must not block the tick
type Feedback interface {
	Play(Cue)
}

// NopDisplay discards every display update
type NopDisplay struct{}

func (NopDisplay) Show(Screen)           {}
func (NopDisplay) Hide(Screen)           {}
func (NopDisplay) SetText(Field, string) {}

// NopFeedback discards every cue
type NopFeedback struct{}

func (NopFeedback) Play(Cue) {}
