// Package platform selects the presentation backend that drives a game.
package platform

import (
	"fmt"

	"raycaster/internal/config"
	"raycaster/internal/game"
	ebitenbackend "raycaster/internal/platform/ebiten"
	"raycaster/internal/platform/sdl"
	"raycaster/internal/platform/tui"
)

// Backend owns the window (or terminal), runs the frame loop and presents
// the game's framebuffer once per frame. Run returns when the user quits.
type Backend interface {
	Run(g *game.Game) error
}

// New returns the backend registered under name.
func New(name string) (Backend, error) {
	switch name {
	case config.BackendEbiten:
		return ebitenbackend.Backend{}, nil
	case config.BackendTUI:
		return tui.Backend{}, nil
	case config.BackendSDL:
		return sdl.Backend{}, nil
	}
	return nil, fmt.Errorf("%w: unknown backend %q", config.ErrInvalidConfig, name)
}
