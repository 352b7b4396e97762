//go:build !sdl

// Package sdl presents frames through an SDL2 window and streaming texture.
// This build has no SDL support; rebuild with -tags sdl to enable it.
package sdl

import (
	"errors"

	"raycaster/internal/game"
)

// ErrNotBuilt is returned by Run when the binary lacks SDL support.
var ErrNotBuilt = errors.New("sdl backend not built in: rebuild with -tags sdl")

// Backend is a placeholder that always fails to run.
type Backend struct{}

// Run returns ErrNotBuilt.
func (Backend) Run(g *game.Game) error {
	return ErrNotBuilt
}
