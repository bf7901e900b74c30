package tui

import "github.com/vovakirdan/slide15/internal/core"

// HeldInput turns key presses into held buttons. Terminals report presses
// and auto-repeat but never releases, so each press keeps its button held
// for a fixed number of ticks.
type HeldInput struct {
	hold      int
	remaining map[core.Action]int
}

// NewHeldInput creates a tracker that holds each press for holdFrames ticks.
func NewHeldInput(holdFrames int) *HeldInput {
	if holdFrames < 1 {
		holdFrames = 1
	}
	return &HeldInput{
		hold:      holdFrames,
		remaining: make(map[core.Action]int),
	}
}

// Press marks a as held, restarting its hold window.
func (h *HeldInput) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	h.remaining[a] = h.hold
}

// Frame returns the buttons held during the current tick and ages every
// press by one tick.
func (h *HeldInput) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
	return frame
}

// Release drops every held button.
func (h *HeldInput) Release() {
	clear(h.remaining)
}
