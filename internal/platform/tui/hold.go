package tui

import (
	"strings"
	"time"

	"github.com/vovakirdan/coin-race/internal/core"
)

// DefaultHoldWindow is used when no hold window is configured. It outlasts
// the usual initial auto-repeat delay so a held key never drops out between
// its first press and its first repeat.
const DefaultHoldWindow = 550 * time.Millisecond

// KeyHold turns a stream of key presses into held keys.
// Terminals send a press (and auto-repeats) but never a release, so a key is
// released once it has gone a full window without another press.
//
// Terminals only auto-repeat the most recently pressed key. When a second
// key goes down, the first stops repeating and is released one window after
// its last repeat even if it is still physically held.
type KeyHold struct {
	state  *core.InputState
	window time.Duration
	last   map[core.Key]time.Time
}

// NewKeyHold creates a tracker that writes into state.
func NewKeyHold(state *core.InputState, window time.Duration) *KeyHold {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &KeyHold{
		state:  state,
		window: window,
		last:   make(map[core.Key]time.Time),
	}
}

// Press records a key event at the given time.
func (h *KeyHold) Press(k core.Key, at time.Time) {
	h.last[k] = at
	h.state.SetPressed(k, true)
}

// Expire releases every key whose last press is a full window old.
func (h *KeyHold) Expire(now time.Time) {
	for k, at := range h.last {
		if now.Sub(at) >= h.window {
			delete(h.last, k)
			h.state.SetPressed(k, false)
		}
	}
}

// Reset releases everything.
func (h *KeyHold) Reset() {
	for k := range h.last {
		delete(h.last, k)
	}
	h.state.Clear()
}

// keyFromMsg normalizes a Bubble Tea key string: single letters are
// lower-cased so caps lock or shift does not change the binding.
func keyFromMsg(s string) core.Key {
	if len(s) == 1 {
		return core.Key(strings.ToLower(s))
	}
	return core.Key(s)
}
