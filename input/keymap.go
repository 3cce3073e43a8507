package input

import "slices"

// KeyMap binds key names to actions; several keys may share one action
type KeyMap struct {
	actions  map[Key]Action
	bindings map[Action][]Key
}

// DefaultKeyMap returns arrow keys plus lowercase WASD for movement, space to confirm
func DefaultKeyMap() *KeyMap {
	km := NewKeyMap()
	km.Bind(ActionUp, KeyArrowUp, KeyW)
	km.Bind(ActionDown, KeyArrowDown, KeyS)
	km.Bind(ActionLeft, KeyArrowLeft, KeyA)
	km.Bind(ActionRight, KeyArrowRight, KeyD)
	km.Bind(ActionConfirm, KeySpace)
	km.Bind(ActionPause, KeyP)
	km.Bind(ActionQuit, KeyEscape)
	return km
}

// NewKeyMap creates an empty KeyMap
func NewKeyMap() *KeyMap {
	return &KeyMap{
		actions:  make(map[Key]Action),
		bindings: make(map[Action][]Key),
	}
}

// Bind maps keys to action, moving any key already bound elsewhere
func (km *KeyMap) Bind(action Action, keys ...Key) {
	for _, k := range keys {
		if prev, ok := km.actions[k]; ok {
			km.bindings[prev] = removeKey(km.bindings[prev], k)
		}
		km.actions[k] = action
		km.bindings[action] = append(km.bindings[action], k)
	}
}

// Action returns the action bound to k, ActionNone for unbound keys
func (km *KeyMap) Action(k Key) Action {
	return km.actions[k]
}

// Keys returns a copy of the keys bound to action in binding order
func (km *KeyMap) Keys(action Action) []Key {
	return slices.Clone(km.bindings[action])
}

func removeKey(keys []Key, k Key) []Key {
	out := make([]Key, 0, len(keys))
	for _, existing := range keys {
		if existing != k {
			out = append(out, existing)
		}
	}
	return out
}
