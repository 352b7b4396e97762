package game

import (
	"fmt"

	"raycaster/internal/config"
	"raycaster/internal/graphics"
	"raycaster/internal/threading"
	"raycaster/internal/world"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
)

// Game owns all per-run state: configuration, the world, the player, the
// camera, the renderer and the framebuffer it draws into. A Game is driven by
// exactly one frame loop and is not safe for concurrent use.
type Game struct {
	config *config.Config
	logger *log.Logger

	world       *world.World
	player      Player
	camera      *Camera
	input       *InputHandler
	renderer    *Renderer
	framebuffer *graphics.Framebuffer
	threading   *threading.ThreadingComponents

	// UI state
	showOverlay bool

	frameCount uint64
	lastHits   int
}

// NewGame validates cfg and builds a game from it. A nil logger falls back to
// the default logger.
func NewGame(cfg *config.Config, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w, err := world.NewWorldFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build world: %w", err)
	}

	mode, err := ParseDepthMode(cfg.Rendering.DepthMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}

	camera := NewCamera(cfg.GetScreenWidth(), cfg.GetViewPlaneDistance())
	tc := threading.NewThreadingComponents(cfg.Rendering.Workers)

	g := &Game{
		config: cfg,
		logger: logger,
		world:  w,
		player: Player{
			Position: mgl32.Vec2{cfg.Player.Start[0], cfg.Player.Start[1]},
			Rotation: cfg.Player.Rotation,
		},
		camera:      camera,
		input:       NewInputHandler(cfg.GetMoveStep()),
		renderer:    NewRenderer(camera, w.Walls(), tc, cfg.Rendering.ClearColor, mode),
		framebuffer: graphics.NewFramebuffer(cfg.GetScreenWidth(), cfg.GetScreenHeight()),
		threading:   tc,
		showOverlay: cfg.Debug.Overlay,
	}

	minP, maxP := w.Bounds()
	logger.Info("world loaded",
		"walls", w.WallCount(),
		"bounds", fmt.Sprintf("(%.0f,%.0f)-(%.0f,%.0f)", minP.X(), minP.Y(), maxP.X(), maxP.Y()),
		"screen", fmt.Sprintf("%dx%d", cfg.GetScreenWidth(), cfg.GetScreenHeight()),
		"depth_mode", mode,
		"workers", tc.ParallelRenderer.Workers(),
	)
	return g, nil
}

// Config returns the configuration the game was built from.
func (g *Game) Config() *config.Config {
	return g.config
}

// Logger returns the game's logger so backends log through the same sink.
func (g *Game) Logger() *log.Logger {
	return g.logger
}

// Frame returns the framebuffer holding the most recently rendered frame.
func (g *Game) Frame() *graphics.Framebuffer {
	return g.framebuffer
}

// Player returns a copy of the player state.
func (g *Game) Player() Player {
	return g.player
}

// World returns the wall geometry.
func (g *Game) World() *world.World {
	return g.world
}

// DepthMode returns the active depth mode.
func (g *Game) DepthMode() DepthMode {
	return g.renderer.DepthMode()
}

// ShowOverlay reports whether the debug overlay is on.
func (g *Game) ShowOverlay() bool {
	return g.showOverlay
}

// FrameCount is the number of frames stepped so far.
func (g *Game) FrameCount() uint64 {
	return g.frameCount
}

// Close stops the render workers. The game must not be stepped afterwards.
func (g *Game) Close() {
	g.threading.Shutdown()
}
