package game

import (
	"math"

	"raycaster/internal/mathutil"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera maps screen columns to camera-space ray directions. Columns are
// centred on the screen middle and the view plane sits viewPlaneDistance
// units ahead along +Y.
type Camera struct {
	halfWidth         int
	viewPlaneDistance float32

	// Precomputed ray direction cache, one entry per column
	directions []mgl32.Vec2
}

// NewCamera creates a camera for a screen screenWidth columns wide and
// precomputes every column's direction.
func NewCamera(screenWidth int, viewPlaneDistance float32) *Camera {
	c := &Camera{
		halfWidth:         screenWidth / 2,
		viewPlaneDistance: viewPlaneDistance,
	}
	c.precomputeRayDirections(screenWidth)
	return c
}

func (c *Camera) precomputeRayDirections(numColumns int) {
	c.directions = make([]mgl32.Vec2, numColumns)
	for sx := range c.directions {
		c.directions[sx] = c.RayDirection(sx)
	}
}

// RayDirection returns the normalized direction of the ray through column sx.
func (c *Camera) RayDirection(sx int) mgl32.Vec2 {
	return mathutil.Normalize(mgl32.Vec2{float32(sx - c.halfWidth), c.viewPlaneDistance})
}

// Directions returns the cached direction of every column. The slice is
// shared and must not be modified.
func (c *Camera) Directions() []mgl32.Vec2 {
	return c.directions
}

// HalfFOV is half the horizontal field of view in radians.
func (c *Camera) HalfFOV() float32 {
	return float32(math.Atan2(float64(c.halfWidth), float64(c.viewPlaneDistance)))
}
