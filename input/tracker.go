package input

// Tracker records the held state of every key it has seen
// Keys never pressed read as not held; unknown names are accepted without validation
type Tracker struct {
	held   map[Key]bool
	keymap *KeyMap
}

// NewTracker creates a Tracker resolving actions through km (DefaultKeyMap when nil)
func NewTracker(km *KeyMap) *Tracker {
	if km == nil {
		km = DefaultKeyMap()
	}
	return &Tracker{
		held:   make(map[Key]bool),
		keymap: km,
	}
}

// Press marks k held and returns the action bound to it
func (t *Tracker) Press(k Key) Action {
	t.held[k] = true
	return t.keymap.Action(k)
}

// Release marks k not held
func (t *Tracker) Release(k Key) {
	t.held[k] = false
}

// Held reports whether k is currently held
func (t *Tracker) Held(k Key) bool {
	return t.held[k]
}

// ActionHeld reports whether any key bound to a is held
func (t *Tracker) ActionHeld(a Action) bool {
	for _, k := range t.keymap.bindings[a] {
		if t.held[k] {
			return true
		}
	}
	return false
}

// ReleaseExcept releases every key not bound to keep and returns the released keys
func (t *Tracker) ReleaseExcept(keep Action) []Key {
	var released []Key
	for k, held := range t.held {
		if held && (keep == ActionNone || t.keymap.Action(k) != keep) {
			t.held[k] = false
			released = append(released, k)
		}
	}
	return released
}

// KeyMap exposes the bindings the tracker resolves through
func (t *Tracker) KeyMap() *KeyMap {
	return t.keymap
}
