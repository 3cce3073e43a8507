package terminal

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kitty-run/input"
)

// EventKind classifies a translated terminal event
type EventKind uint8

const (
	EventNone EventKind = iota
	EventKey
	EventResize
	EventClosed
)

// Event is a backend-neutral terminal event
type Event struct {
	Kind EventKind
	Key  input.Key
	When time.Time
}

// Translate converts a tcell event; unhandled events map to EventNone
func Translate(ev tcell.Event) Event {
	switch e := ev.(type) {
	case nil:
		return Event{Kind: EventClosed}
	case *tcell.EventResize:
		return Event{Kind: EventResize, When: e.When()}
	case *tcell.EventKey:
		if k, ok := TranslateKey(e); ok {
			return Event{Kind: EventKey, Key: k, When: e.When()}
		}
	}
	return Event{}
}

// TranslateKey maps a tcell key event to the browser-style key name
// Ctrl-C reports as Escape so both quit
func TranslateKey(e *tcell.EventKey) (input.Key, bool) {
	switch e.Key() {
	case tcell.KeyUp:
		return input.KeyArrowUp, true
	case tcell.KeyDown:
		return input.KeyArrowDown, true
	case tcell.KeyLeft:
		return input.KeyArrowLeft, true
	case tcell.KeyRight:
		return input.KeyArrowRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.KeyEscape, true
	case tcell.KeyRune:
		return input.Key(string(unicode.ToLower(e.Rune()))), true
	}
	return "", false
}

// PollEvent blocks for the next terminal event
func (s *Screen) PollEvent() Event {
	return Translate(s.screen.PollEvent())
}
