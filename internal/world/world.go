package world

import (
	"errors"
	"fmt"

	"raycaster/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrTooFewPoints is returned when the polyline cannot form a single wall.
	ErrTooFewPoints = errors.New("world needs at least two points")
	// ErrColorCountMismatch is returned when colors are not in lockstep with walls.
	ErrColorCountMismatch = errors.New("world needs exactly one color per wall")
)

// Wall is one segment of the world polyline.
type Wall struct {
	A, B  mgl32.Vec2 // L0 and L1
	Color uint32     // Packed 0xRRGGBBAA
}

// World is an immutable polyline of N+1 points forming N walls, with one
// color per wall.
type World struct {
	points []mgl32.Vec2
	walls  []Wall
}

// NewWorld builds the walls from consecutive point pairs. colors must have
// exactly len(points)-1 entries.
func NewWorld(points []mgl32.Vec2, colors []uint32) (*World, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}
	if len(colors) != len(points)-1 {
		return nil, fmt.Errorf("%w: %d walls, %d colors", ErrColorCountMismatch, len(points)-1, len(colors))
	}

	w := &World{
		points: append([]mgl32.Vec2(nil), points...),
		walls:  make([]Wall, len(colors)),
	}
	for i, c := range colors {
		w.walls[i] = Wall{A: points[i], B: points[i+1], Color: c}
	}
	return w, nil
}

// NewWorldFromConfig builds the world from the world section of cfg.
func NewWorldFromConfig(cfg *config.Config) (*World, error) {
	points := make([]mgl32.Vec2, len(cfg.World.Points))
	for i, p := range cfg.World.Points {
		points[i] = mgl32.Vec2{p[0], p[1]}
	}
	return NewWorld(points, cfg.World.Colors)
}

// Walls returns the walls in world order. The slice must not be modified.
func (w *World) Walls() []Wall {
	return w.walls
}

// WallCount returns the number of walls.
func (w *World) WallCount() int {
	return len(w.walls)
}

// Bounds returns the axis-aligned box around every point of the polyline.
func (w *World) Bounds() (minP, maxP mgl32.Vec2) {
	minP, maxP = w.points[0], w.points[0]
	for _, p := range w.points[1:] {
		minP = mgl32.Vec2{min(minP[0], p[0]), min(minP[1], p[1])}
		maxP = mgl32.Vec2{max(maxP[0], p[0]), max(maxP[1], p[1])}
	}
	return minP, maxP
}
