package game

import (
	"fmt"

	"raycaster/internal/collision"
	"raycaster/internal/config"
	"raycaster/internal/graphics"
	"raycaster/internal/threading"
	"raycaster/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// DepthMode selects how overlapping walls in one column are resolved.
type DepthMode string

const (
	// DepthOverdraw draws every hit in world order; later walls overdraw earlier ones.
	DepthOverdraw DepthMode = config.DepthModeOverdraw
	// DepthNearest draws only the closest hit of each column.
	DepthNearest DepthMode = config.DepthModeNearest
)

// ParseDepthMode converts a config value into a DepthMode.
func ParseDepthMode(s string) (DepthMode, error) {
	switch DepthMode(s) {
	case DepthOverdraw, DepthNearest:
		return DepthMode(s), nil
	}
	return "", fmt.Errorf("unknown depth mode %q", s)
}

// Next returns the mode the Tab key switches to.
func (m DepthMode) Next() DepthMode {
	if m == DepthNearest {
		return DepthOverdraw
	}
	return DepthNearest
}

// Renderer casts one ray per framebuffer column against every wall and draws
// the projected strips.
type Renderer struct {
	camera     *Camera
	walls      []world.Wall
	threading  *threading.ThreadingComponents
	clearColor uint32
	depthMode  DepthMode

	// Per-column hit flags, written by the column that owns the index
	columnHits []bool
}

// NewRenderer creates a renderer over a fixed wall list.
func NewRenderer(camera *Camera, walls []world.Wall, tc *threading.ThreadingComponents, clearColor uint32, mode DepthMode) *Renderer {
	return &Renderer{
		camera:     camera,
		walls:      walls,
		threading:  tc,
		clearColor: clearColor,
		depthMode:  mode,
	}
}

// DepthMode returns the active depth mode.
func (r *Renderer) DepthMode() DepthMode {
	return r.depthMode
}

// SetDepthMode switches the depth mode for subsequent frames.
func (r *Renderer) SetDepthMode(mode DepthMode) {
	r.depthMode = mode
}

// RenderFrame clears fb and draws the view from origin. It returns the number
// of columns that hit at least one wall.
func (r *Renderer) RenderFrame(fb *graphics.Framebuffer, origin mgl32.Vec2) int {
	fb.Clear(r.clearColor)

	numColumns := min(fb.Width, len(r.camera.Directions()))
	if len(r.columnHits) != numColumns {
		r.columnHits = make([]bool, numColumns)
	}

	raycastTimer := r.threading.PerformanceMonitor.StartRaycast()
	r.threading.ParallelRenderer.RenderColumns(numColumns, func(column int) {
		r.columnHits[column] = r.renderColumn(fb, origin, column)
	})
	raycastTimer.EndRaycast()

	hits := 0
	for _, hit := range r.columnHits {
		if hit {
			hits++
		}
	}
	r.threading.PerformanceMonitor.RecordColumns(uint64(numColumns), uint64(hits))
	return hits
}

// renderColumn casts the ray of one column. It only writes pixels of that column.
func (r *Renderer) renderColumn(fb *graphics.Framebuffer, origin mgl32.Vec2, column int) bool {
	dir := r.camera.Directions()[column]
	screenHalfHeight := fb.MidRow()

	hitAny := false
	var nearest collision.Hit
	var nearestColor uint32

	for _, wall := range r.walls {
		hit, ok := collision.IntersectRaySegment(origin, dir, wall.A, wall.B)
		if !ok {
			continue
		}

		if r.depthMode == DepthNearest {
			if !hitAny || hit.T < nearest.T {
				nearest = hit
				nearestColor = wall.Color
			}
		} else {
			fb.DrawStrip(column, graphics.ProjectHalfHeight(screenHalfHeight, hit.T), wall.Color)
		}
		hitAny = true
	}

	if hitAny && r.depthMode == DepthNearest {
		fb.DrawStrip(column, graphics.ProjectHalfHeight(screenHalfHeight, nearest.T), nearestColor)
	}
	return hitAny
}
