package input

import (
	"time"

	"github.com/lixenwraith/kitty-run/constants"
)

// HoldTracker emulates key release for backends that only report presses
// Terminals deliver a press, pause for the auto-repeat delay, then repeat quickly;
// a key stays held while presses keep arriving inside the expected window
type HoldTracker struct {
	*Tracker

	FirstRepeat time.Duration
	Repeat      time.Duration

	deadlines map[Key]time.Time
}

// NewHoldTracker wraps a Tracker with the default repeat windows
func NewHoldTracker(km *KeyMap) *HoldTracker {
	return &HoldTracker{
		Tracker:     NewTracker(km),
		FirstRepeat: constants.KeyFirstRepeatWindow,
		Repeat:      constants.KeyRepeatWindow,
		deadlines:   make(map[Key]time.Time),
	}
}

// PressAt records a press seen at now; returns the bound action and whether this was a fresh press
func (h *HoldTracker) PressAt(k Key, now time.Time) (Action, bool) {
	fresh := !h.Held(k)
	window := h.Repeat
	if fresh {
		window = h.FirstRepeat
	}
	h.deadlines[k] = now.Add(window)
	return h.Press(k), fresh
}

// Expire releases keys whose repeat window has passed
func (h *HoldTracker) Expire(now time.Time) {
	for k, deadline := range h.deadlines {
		if now.After(deadline) {
			h.Release(k)
			delete(h.deadlines, k)
		}
	}
}

// ReleaseExcept releases keys not bound to keep; kept keys retain their repeat deadline
// so their auto-repeats are not seen as fresh presses
func (h *HoldTracker) ReleaseExcept(keep Action) []Key {
	released := h.Tracker.ReleaseExcept(keep)
	for _, k := range released {
		delete(h.deadlines, k)
	}
	return released
}
