// Package ebiten presents frames in a window through Ebitengine.
package ebiten

import (
	"fmt"
	"image/color"

	"raycaster/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	overlayLineHeight = 13
	overlayMargin     = 4
)

var overlayColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// keyMap translates game keys to Ebitengine keys.
var keyMap = map[game.Key]ebiten.Key{
	game.KeyW:   ebiten.KeyW,
	game.KeyA:   ebiten.KeyA,
	game.KeyS:   ebiten.KeyS,
	game.KeyD:   ebiten.KeyD,
	game.KeyTab: ebiten.KeyTab,
	game.KeyF3:  ebiten.KeyF3,
}

// keyState reads held keys from Ebitengine's input state.
type keyState struct{}

func (keyState) IsKeyPressed(key game.Key) bool {
	ek, ok := keyMap[key]
	return ok && ebiten.IsKeyPressed(ek)
}

// GameLoop implements ebiten.Game on top of a game.Game.
type GameLoop struct {
	game   *game.Game
	pixels []byte // RGBA staging buffer for WritePixels
}

// NewGameLoop creates a game loop for g.
func NewGameLoop(g *game.Game) *GameLoop {
	fb := g.Frame()
	return &GameLoop{
		game:   g,
		pixels: make([]byte, 4*fb.Width*fb.Height),
	}
}

// Update advances the game one frame. Escape ends the loop.
func (gl *GameLoop) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	gl.game.Step(keyState{})
	return nil
}

// Draw uploads the framebuffer and draws the overlay on top when enabled.
func (gl *GameLoop) Draw(screen *ebiten.Image) {
	gl.game.Frame().WriteRGBA(gl.pixels)
	screen.WritePixels(gl.pixels)

	if gl.game.ShowOverlay() {
		face := basicfont.Face7x13
		for i, line := range gl.game.OverlayLines() {
			ebitext.Draw(screen, line, face, overlayMargin, overlayMargin+(i+1)*overlayLineHeight, overlayColor)
		}
	}
}

// Layout returns the framebuffer size; Ebitengine scales it to the window.
func (gl *GameLoop) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	fb := gl.game.Frame()
	return fb.Width, fb.Height
}

// Backend runs the game in an Ebitengine window.
type Backend struct{}

// Run opens the window and blocks until it is closed or Escape is pressed.
func (Backend) Run(g *game.Game) error {
	cfg := g.Config()

	ebiten.SetWindowSize(cfg.GetWindowWidth(), cfg.GetWindowHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetVsyncEnabled(cfg.Display.VSync)

	g.Logger().Debug("starting ebiten backend", "window", fmt.Sprintf("%dx%d", cfg.GetWindowWidth(), cfg.GetWindowHeight()), "vsync", cfg.Display.VSync)
	if err := ebiten.RunGame(NewGameLoop(g)); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}
