package tui

import (
	"time"

	"github.com/vovakirdan/tui-contra/internal/core"
)

// Terminals report key presses and auto-repeats but never releases. A key
// counts as held while repeats keep arriving; the first repeat takes longer
// than the following ones, so the window starts wide and then narrows.
const (
	DefaultHoldInitial = 500 * time.Millisecond
	DefaultHoldRepeat  = 100 * time.Millisecond
)

type holdState struct {
	expires time.Time
	fresh   bool // pressed since the last frame
}

// HoldTracker synthesizes held and released actions from key events.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	keys    map[core.Action]*holdState
}

// NewHoldTracker creates a tracker. A zero duration selects the default.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	if initial <= 0 {
		initial = DefaultHoldInitial
	}
	if repeat <= 0 {
		repeat = DefaultHoldRepeat
	}
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		keys:    make(map[core.Action]*holdState),
	}
}

// Press records a key event for the action at now. It returns true when
// the action was not held, i.e. the event is a new press rather than an
// auto-repeat.
func (h *HoldTracker) Press(a core.Action, now time.Time) bool {
	if st, ok := h.keys[a]; ok && !now.After(st.expires) {
		st.expires = now.Add(h.repeat)
		return false
	}
	h.keys[a] = &holdState{expires: now.Add(h.initial), fresh: true}
	return true
}

// Frame writes the input of the tick at now into frame. New presses are
// pressed and held, tracked keys are held, and keys whose window ran out
// are released and forgotten. A press is reported at least once even if
// its window already expired.
func (h *HoldTracker) Frame(now time.Time, frame *core.InputFrame) {
	for a, st := range h.keys {
		switch {
		case st.fresh:
			frame.Set(a)
			st.fresh = false
		case now.After(st.expires):
			frame.Release(a)
			delete(h.keys, a)
		default:
			frame.Hold(a)
		}
	}
}

// Held reports whether the action is currently tracked as held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.keys[a]
	return ok
}

// Reset forgets every tracked key.
func (h *HoldTracker) Reset() {
	clear(h.keys)
}
