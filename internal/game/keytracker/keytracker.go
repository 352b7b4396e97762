// Package keytracker turns polled key-down state into press edges.
package keytracker

// KeyStateTracker tracks the previous state of a key.
type KeyStateTracker struct {
	prevPressed bool
}

// IsKeyJustPressed returns true if the key was not pressed last frame but is
// pressed this frame. Call it exactly once per frame with the key's current state.
func (k *KeyStateTracker) IsKeyJustPressed(pressed bool) bool {
	justPressed := pressed && !k.prevPressed
	k.prevPressed = pressed
	return justPressed
}
