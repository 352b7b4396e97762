package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"raycaster/internal/game"
)

// mapKey translates a Bubble Tea key message to a game key.
// isQuit is true for the keys that end the program.
func mapKey(msg tea.KeyMsg) (key game.Key, ok bool, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return 0, false, true
	case "w", "up":
		return game.KeyW, true, false
	case "s", "down":
		return game.KeyS, true, false
	case "a", "left":
		return game.KeyA, true, false
	case "d", "right":
		return game.KeyD, true, false
	case "tab":
		return game.KeyTab, true, false
	case "f3":
		return game.KeyF3, true, false
	}
	return 0, false, false
}

// heldKeys emulates key-down state on top of key press events. Terminals
// only report presses (plus autorepeat), so each press counts as held for a
// fixed number of frames.
type heldKeys struct {
	holdFrames int
	remaining  map[game.Key]int
}

func newHeldKeys(holdFrames int) *heldKeys {
	return &heldKeys{
		holdFrames: max(1, holdFrames),
		remaining:  make(map[game.Key]int),
	}
}

// press marks key as held for the next holdFrames frames.
func (h *heldKeys) press(key game.Key) {
	h.remaining[key] = h.holdFrames
}

// IsKeyPressed implements game.KeyState.
func (h *heldKeys) IsKeyPressed(key game.Key) bool {
	return h.remaining[key] > 0
}

// tick ages every held key by one frame.
func (h *heldKeys) tick() {
	for key, n := range h.remaining {
		if n <= 1 {
			delete(h.remaining, key)
		} else {
			h.remaining[key] = n - 1
		}
	}
}
