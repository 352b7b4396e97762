package game

import "github.com/go-gl/mathgl/mgl32"

// Player is the viewer. Position is in world units. Rotation is carried from
// config but not applied to rays: the camera always looks along +Y.
type Player struct {
	Position mgl32.Vec2
	Rotation float32
}

// Move translates the player by delta.
func (p *Player) Move(delta mgl32.Vec2) {
	p.Position = p.Position.Add(delta)
}
