package game

import (
	"raycaster/internal/game/keytracker"

	"github.com/go-gl/mathgl/mgl32"
)

// Key is a backend-independent key identifier.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyTab
	KeyF3
)

var keyNames = [...]string{
	KeyW:   "W",
	KeyA:   "A",
	KeyS:   "S",
	KeyD:   "D",
	KeyTab: "Tab",
	KeyF3:  "F3",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "Unknown"
	}
	return keyNames[k]
}

// KeyState reports which keys are held down this frame. Backends implement it
// on top of their own input APIs.
type KeyState interface {
	IsKeyPressed(key Key) bool
}

// InputActions are the edge-triggered requests produced by one frame of input.
type InputActions struct {
	CycleDepthMode bool
	ToggleOverlay  bool
}

// InputHandler applies held keys to the player and detects toggle presses.
type InputHandler struct {
	step float32

	depthModeKey keytracker.KeyStateTracker
	overlayKey   keytracker.KeyStateTracker
}

// NewInputHandler creates an input handler moving step world units per frame.
func NewInputHandler(step float32) *InputHandler {
	return &InputHandler{step: step}
}

// HandleInput processes one frame of input.
func (ih *InputHandler) HandleInput(keys KeyState, player *Player) InputActions {
	ih.handleMovementInput(keys, player)
	return ih.handleToggleInput(keys)
}

// handleMovementInput moves along Y then X. W wins over S and D wins over A,
// so holding both keys of a pair never cancels out.
func (ih *InputHandler) handleMovementInput(keys KeyState, player *Player) {
	var delta mgl32.Vec2

	if keys.IsKeyPressed(KeyW) {
		delta[1] = ih.step
	} else if keys.IsKeyPressed(KeyS) {
		delta[1] = -ih.step
	}

	if keys.IsKeyPressed(KeyD) {
		delta[0] = ih.step
	} else if keys.IsKeyPressed(KeyA) {
		delta[0] = -ih.step
	}

	player.Move(delta)
}

func (ih *InputHandler) handleToggleInput(keys KeyState) InputActions {
	return InputActions{
		CycleDepthMode: ih.depthModeKey.IsKeyJustPressed(keys.IsKeyPressed(KeyTab)),
		ToggleOverlay:  ih.overlayKey.IsKeyJustPressed(keys.IsKeyPressed(KeyF3)),
	}
}
