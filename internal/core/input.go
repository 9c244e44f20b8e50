package core

// Key identifies a physical key as reported by the host (e.g. "w", "up").
// Identifiers are not validated: a key nobody binds is simply never queried.
type Key string

// KeyReader is the read side of the input state used by the simulation.
type KeyReader interface {
	IsPressed(k Key) bool
}

// InputState tracks the set of currently held keys.
// Hosts mutate it from key events; the simulation only reads it.
// Last state wins: there is no event queue and no replay.
type InputState struct {
	pressed map[Key]bool
}

// NewInputState creates an empty input state.
func NewInputState() *InputState {
	return &InputState{
		pressed: make(map[Key]bool),
	}
}

// SetPressed records whether k is held.
func (s *InputState) SetPressed(k Key, down bool) {
	if s.pressed == nil {
		s.pressed = make(map[Key]bool)
	}
	if down {
		s.pressed[k] = true
		return
	}
	delete(s.pressed, k)
}

// IsPressed reports whether k is currently held.
func (s *InputState) IsPressed(k Key) bool {
	if s == nil || s.pressed == nil {
		return false
	}
	return s.pressed[k]
}

// Clear releases every key.
func (s *InputState) Clear() {
	for k := range s.pressed {
		delete(s.pressed, k)
	}
}
