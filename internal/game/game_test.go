package game

import (
	"errors"
	"io"
	"testing"

	"raycaster/internal/collision"
	"raycaster/internal/config"
	"raycaster/internal/graphics"
	"raycaster/internal/world"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	colorA uint32 = 0xFF0000FF
	colorB uint32 = 0x00FF00FF
	colorC uint32 = 0x0000FFFF
)

// newTestConfig returns the default config with the given world.
func newTestConfig(points [][2]float32, colors []uint32) *config.Config {
	cfg := config.DefaultConfig()
	cfg.World.Points = points
	cfg.World.Colors = colors
	cfg.Debug.StatsInterval = 0
	return cfg
}

func newTestGame(t *testing.T, cfg *config.Config) *Game {
	t.Helper()
	g, err := NewGame(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	t.Cleanup(g.Close)
	return g
}

func columnRows(fb *graphics.Framebuffer, column int, c uint32) int {
	n := 0
	for y := 0; y < fb.Height; y++ {
		if fb.At(column, y) == c {
			n++
		}
	}
	return n
}

// Two walls crossing the centre ray at y=40 (A) and y=80 (C), joined by a
// side wall (B) that runs parallel to it.
var boxPoints = [][2]float32{{-10, 40}, {10, 40}, {10, 80}, {-10, 80}}
var boxColors = []uint32{colorA, colorB, colorC}

func TestNewGameErrors(t *testing.T) {
	t.Run("mismatched colors", func(t *testing.T) {
		cfg := newTestConfig([][2]float32{{0, 0}, {1, 1}, {2, 2}}, []uint32{colorA})
		_, err := NewGame(cfg, nil)
		if !errors.Is(err, world.ErrColorCountMismatch) {
			t.Errorf("err = %v, want ErrColorCountMismatch", err)
		}
	})

	t.Run("single point", func(t *testing.T) {
		cfg := newTestConfig([][2]float32{{0, 0}}, nil)
		_, err := NewGame(cfg, nil)
		if !errors.Is(err, world.ErrTooFewPoints) {
			t.Errorf("err = %v, want ErrTooFewPoints", err)
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := newTestConfig(boxPoints, boxColors)
		cfg.Rendering.DepthMode = "furthest"
		_, err := NewGame(cfg, nil)
		if !errors.Is(err, config.ErrInvalidConfig) {
			t.Errorf("err = %v, want ErrInvalidConfig", err)
		}
	})
}

func TestNewGameFromConfig(t *testing.T) {
	cfg := newTestConfig(boxPoints, boxColors)
	cfg.Player.Start = [2]float32{3, -4}
	cfg.Player.Rotation = 1.25
	cfg.Debug.Overlay = true

	g := newTestGame(t, cfg)

	if g.Player().Position != (mgl32.Vec2{3, -4}) || g.Player().Rotation != 1.25 {
		t.Errorf("player = %+v, want start (3,-4) rotation 1.25", g.Player())
	}
	if g.Frame().Width != 384 || g.Frame().Height != 216 {
		t.Errorf("framebuffer %dx%d, want 384x216", g.Frame().Width, g.Frame().Height)
	}
	if g.World().WallCount() != 3 {
		t.Errorf("WallCount() = %d, want 3", g.World().WallCount())
	}
	if g.DepthMode() != DepthOverdraw {
		t.Errorf("DepthMode() = %q, want overdraw", g.DepthMode())
	}
	if !g.ShowOverlay() {
		t.Error("overlay should start on")
	}
}

func TestEndToEndCentreColumn(t *testing.T) {
	t.Run("colinear wall is not hit", func(t *testing.T) {
		cfg := newTestConfig([][2]float32{{0, 128}, {0, 64}}, []uint32{colorA})
		g := newTestGame(t, cfg)
		g.Render()

		if got := columnRows(g.Frame(), 192, colorA); got != 0 {
			t.Errorf("centre column has %d wall rows, want 0 for a wall along the ray", got)
		}
	})

	t.Run("crossing wall", func(t *testing.T) {
		l0, l1 := mgl32.Vec2{-32, 64}, mgl32.Vec2{32, 128}
		cfg := newTestConfig([][2]float32{{l0.X(), l0.Y()}, {l1.X(), l1.Y()}}, []uint32{colorA})
		g := newTestGame(t, cfg)
		g.Render()

		dir := g.camera.RayDirection(192)
		hit, ok := collision.IntersectRaySegment(mgl32.Vec2{}, dir, l0, l1)
		if !ok {
			t.Fatal("centre ray missed the crossing wall")
		}
		if hit.T < 64 || hit.T > 128 || !approx(hit.T, 96, 0.5) {
			t.Errorf("t = %v, want ~96", hit.T)
		}
		if !approx(hit.U, 0.5, 0.01) {
			t.Errorf("u = %v, want ~0.5", hit.U)
		}

		hh := graphics.ProjectHalfHeight(108, hit.T)
		if hh != int(108-hit.T) {
			t.Errorf("half-height = %d, want %d", hh, int(108-hit.T))
		}
		if got := columnRows(g.Frame(), 192, colorA); got != 2*hh-1 {
			t.Errorf("centre column has %d wall rows, want %d", got, 2*hh-1)
		}
	})
}

func TestDepthModes(t *testing.T) {
	const mid = 108

	t.Run("overdraw lets the later wall win", func(t *testing.T) {
		g := newTestGame(t, newTestConfig(boxPoints, boxColors))
		g.Render()

		fb := g.Frame()
		if fb.At(192, mid) != colorC {
			t.Errorf("mid row = %#x, want far wall %#x drawn over near wall", fb.At(192, mid), colorC)
		}
		// beyond the far strip only the near wall remains
		if fb.At(192, mid+50) != colorA {
			t.Errorf("row mid+50 = %#x, want near wall %#x", fb.At(192, mid+50), colorA)
		}
		if columnRows(fb, 192, colorB) != 0 {
			t.Error("side wall parallel to the centre ray must not be drawn")
		}
	})

	t.Run("nearest draws only the closest wall", func(t *testing.T) {
		cfg := newTestConfig(boxPoints, boxColors)
		cfg.Rendering.DepthMode = config.DepthModeNearest
		g := newTestGame(t, cfg)
		g.Render()

		fb := g.Frame()
		if columnRows(fb, 192, colorC) != 0 {
			t.Error("far wall drawn in nearest mode")
		}
		if fb.At(192, mid) != colorA || fb.At(192, mid+50) != colorA {
			t.Error("near wall missing in nearest mode")
		}
	})
}

func TestTabCyclesDepthMode(t *testing.T) {
	g := newTestGame(t, newTestConfig(boxPoints, boxColors))

	g.Step(held(KeyTab))
	if g.DepthMode() != DepthNearest {
		t.Fatalf("after Tab: %q, want nearest", g.DepthMode())
	}
	if g.Frame().At(192, 108) != colorA {
		t.Error("frame after Tab should already use nearest mode")
	}

	// holding Tab must not keep cycling
	g.Step(held(KeyTab))
	g.Step(held(KeyTab))
	if g.DepthMode() != DepthNearest {
		t.Errorf("held Tab changed mode to %q", g.DepthMode())
	}

	g.Step(held())
	g.Step(held(KeyTab))
	if g.DepthMode() != DepthOverdraw {
		t.Errorf("second Tab: %q, want overdraw", g.DepthMode())
	}
}

func TestF3TogglesOverlay(t *testing.T) {
	g := newTestGame(t, newTestConfig(boxPoints, boxColors))
	if g.ShowOverlay() {
		t.Fatal("overlay should start off")
	}

	g.Step(held(KeyF3))
	if !g.ShowOverlay() {
		t.Error("F3 should turn the overlay on")
	}
	g.Step(held())
	g.Step(held(KeyF3))
	if g.ShowOverlay() {
		t.Error("second F3 should turn the overlay off")
	}

	lines := g.OverlayLines()
	if len(lines) == 0 {
		t.Fatal("no overlay lines")
	}
	for _, line := range lines {
		for _, r := range line {
			if r > 126 {
				t.Errorf("overlay line %q is not plain ASCII", line)
				break
			}
		}
	}
}

func TestStepMovesThenRenders(t *testing.T) {
	g := newTestGame(t, newTestConfig(boxPoints, boxColors))

	wallRows := func() int {
		return columnRows(g.Frame(), 192, colorA) + columnRows(g.Frame(), 192, colorC)
	}

	g.Step(held())
	before := wallRows()

	for i := 0; i < 20; i++ {
		g.Step(held(KeyW))
	}
	if g.Player().Position != (mgl32.Vec2{0, 20}) {
		t.Fatalf("position = %v, want (0, 20)", g.Player().Position)
	}
	after := wallRows()
	if after <= before {
		t.Errorf("strip did not grow when walking towards it: %d -> %d", before, after)
	}
	if g.FrameCount() != 21 {
		t.Errorf("FrameCount() = %d, want 21", g.FrameCount())
	}
}

func TestParallelRenderingMatchesInline(t *testing.T) {
	render := func(workers int, mode string) []uint32 {
		cfg := config.DefaultConfig()
		cfg.Rendering.Workers = workers
		cfg.Rendering.DepthMode = mode
		cfg.Player.Start = [2]float32{5, -10}
		g := newTestGame(t, cfg)
		g.Render()
		return append([]uint32(nil), g.Frame().Pix...)
	}

	for _, mode := range []string{config.DepthModeOverdraw, config.DepthModeNearest} {
		inline := render(1, mode)
		for _, workers := range []int{2, 4, 0} {
			parallel := render(workers, mode)
			for i := range inline {
				if inline[i] != parallel[i] {
					t.Errorf("%s, %d workers: pixel %d = %#x, inline %#x", mode, workers, i, parallel[i], inline[i])
					break
				}
			}
		}
	}
}

func TestRenderClearsPreviousFrame(t *testing.T) {
	cfg := newTestConfig(boxPoints, boxColors)
	cfg.Rendering.ClearColor = 0x101010FF
	g := newTestGame(t, cfg)

	g.Frame().Set(0, 0, colorB)
	g.Render()
	if g.Frame().At(0, 0) != 0x101010FF {
		t.Errorf("pixel (0,0) = %#x, want clear color", g.Frame().At(0, 0))
	}
}
