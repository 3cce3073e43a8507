package game

import (
	"github.com/lixenwraith/kitty-run/input"
	"github.com/lixenwraith/kitty-run/vmath"
)

// heldActions is a Controls stub holding a fixed set of actions
type heldActions map[input.Action]bool

func (h heldActions) ActionHeld(a input.Action) bool { return h[a] }

func held(actions ...input.Action) heldActions {
	h := heldActions{}
	for _, a := range actions {
		h[a] = true
	}
	return h
}

type displayCall struct {
	op     string
	screen Screen
	field  Field
	text   string
}

type recordingDisplay struct {
	calls []displayCall
	texts map[Field]string
	shown map[Screen]bool
}

func newRecordingDisplay() *recordingDisplay {
	return &recordingDisplay{texts: map[Field]string{}, shown: map[Screen]bool{}}
}

func (d *recordingDisplay) Show(s Screen) {
	d.shown[s] = true
	d.calls = append(d.calls, displayCall{op: "show", screen: s})
}

func (d *recordingDisplay) Hide(s Screen) {
	d.shown[s] = false
	d.calls = append(d.calls, displayCall{op: "hide", screen: s})
}

func (d *recordingDisplay) SetText(f Field, text string) {
	d.texts[f] = text
	d.calls = append(d.calls, displayCall{op: "text", field: f, text: text})
}

type recordingFeedback struct {
	cues []Cue
}

func (f *recordingFeedback) Play(c Cue) { f.cues = append(f.cues, c) }

func (f *recordingFeedback) count(c Cue) int {
	n := 0
	for _, cue := range f.cues {
		if cue == c {
			n++
		}
	}
	return n
}

// newActiveSession returns a started session with recording collaborators
func newActiveSession() (*Session, *recordingDisplay, *recordingFeedback) {
	d := newRecordingDisplay()
	f := &recordingFeedback{}
	s := NewSession(DefaultRules(), vmath.NewFastRand(12345), d, f)
	s.Confirm()
	return s, d, f
}

// farPickup sits in the top-left corner, away from the centered player
func farPickup() Pickup {
	return Pickup{X: 0, Y: 0, Width: 30, Height: 30}
}
