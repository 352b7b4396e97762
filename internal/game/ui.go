package game

import (
	"fmt"
	"math"
)

// OverlayLines returns the debug overlay text, one entry per line. Backends
// draw it however they can; the text is plain ASCII.
func (g *Game) OverlayLines() []string {
	metrics := g.threading.GetPerformanceMetrics()
	pos := g.player.Position
	fovDegrees := float64(g.camera.HalfFOV()) * 2 * 180 / math.Pi

	return []string{
		fmt.Sprintf("FPS %.1f  frame %.2fms  cast %.2fms", metrics.FramesPerSecond, metrics.AvgFrameTimeMS, metrics.RaycastTimeMS),
		fmt.Sprintf("pos (%.1f, %.1f)  fov %.0f deg", pos.X(), pos.Y(), fovDegrees),
		fmt.Sprintf("depth %s  hits %d/%d  walls %d  workers %d",
			g.renderer.DepthMode(), g.lastHits, g.framebuffer.Width, g.world.WallCount(), g.threading.ParallelRenderer.Workers()),
		"WASD move  Tab depth  F3 overlay  Esc quit",
	}
}
