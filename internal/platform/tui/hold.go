package tui

import (
	"time"

	"github.com/vovakirdan/antidote-run/internal/core"
)

// DefaultHoldWindow covers the gap between a key press and the terminal's
// first auto-repeat, which is 250-600ms on common setups. A released key
// therefore keeps acting for up to this long.
const DefaultHoldWindow = 500 * time.Millisecond

// HoldTracker turns key presses into held state. Terminals report presses
// and auto-repeats but never releases, so an action counts as held until no
// press has been seen for the window.
type HoldTracker struct {
	window time.Duration
	until  map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window: window,
		until:  make(map[core.Action]time.Time),
	}
}

// Press records a press (or auto-repeat) of a at now.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	h.until[a] = now.Add(h.window)
}

// Held reports whether a is still considered down at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	until, ok := h.until[a]
	return ok && now.Before(until)
}

// Apply sets every held action on frame and forgets expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, until := range h.until {
		if now.Before(until) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
}

// Release drops a immediately, e.g. when the opposite direction is pressed.
func (h *HoldTracker) Release(a core.Action) {
	delete(h.until, a)
}

// Reset forgets every held action.
func (h *HoldTracker) Reset() {
	clear(h.until)
}
