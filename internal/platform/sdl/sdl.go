//go:build sdl

// Package sdl presents frames through an SDL2 window and streaming texture.
package sdl

import (
	"encoding/binary"
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"raycaster/internal/game"
	"raycaster/internal/graphics"
)

// scancodes translates game keys to SDL scancodes.
var scancodes = map[game.Key]sdl.Scancode{
	game.KeyW:   sdl.SCANCODE_W,
	game.KeyA:   sdl.SCANCODE_A,
	game.KeyS:   sdl.SCANCODE_S,
	game.KeyD:   sdl.SCANCODE_D,
	game.KeyTab: sdl.SCANCODE_TAB,
	game.KeyF3:  sdl.SCANCODE_F3,
}

// keyboardState reads the keyboard snapshot SDL updates on every PollEvent.
type keyboardState struct {
	state []uint8
}

func (k keyboardState) IsKeyPressed(key game.Key) bool {
	sc, ok := scancodes[key]
	return ok && int(sc) < len(k.state) && k.state[sc] == 1
}

// Backend runs the game in an SDL2 window.
type Backend struct{}

// Run creates the window, renderer and texture, then loops until the window
// is closed or Escape is pressed. Every resource acquired is released on
// return, including when a later one fails to initialize.
func (Backend) Run(g *game.Game) error {
	// SDL calls must stay on the thread that initialized it.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	cfg := g.Config()
	fb := g.Frame()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(cfg.Display.WindowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.GetWindowWidth()), int32(cfg.GetWindowHeight()),
		windowFlags(cfg.Display.Resizable))
	if err != nil {
		return fmt.Errorf("sdl create window: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, rendererFlags(cfg.Display.VSync))
	if err != nil {
		return fmt.Errorf("sdl create renderer: %w", err)
	}
	defer renderer.Destroy()

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGBA8888, sdl.TEXTUREACCESS_STREAMING,
		int32(fb.Width), int32(fb.Height))
	if err != nil {
		return fmt.Errorf("sdl create texture: %w", err)
	}
	defer texture.Destroy()

	g.Logger().Debug("starting sdl backend", "window", fmt.Sprintf("%dx%d", cfg.GetWindowWidth(), cfg.GetWindowHeight()), "vsync", cfg.Display.VSync)

	for {
		if quit := pollEvents(); quit {
			return nil
		}

		g.Step(keyboardState{state: sdl.GetKeyboardState()})

		if err := upload(texture, g.Frame()); err != nil {
			return err
		}
		if err := renderer.Clear(); err != nil {
			return fmt.Errorf("sdl clear: %w", err)
		}
		if err := renderer.Copy(texture, nil, nil); err != nil {
			return fmt.Errorf("sdl copy: %w", err)
		}
		renderer.Present()
	}
}

func windowFlags(resizable bool) uint32 {
	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_ALLOW_HIGHDPI)
	if resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	return flags
}

func rendererFlags(vsync bool) uint32 {
	flags := uint32(sdl.RENDERER_ACCELERATED)
	if vsync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	return flags
}

// pollEvents drains the event queue and reports whether the user asked to quit.
func pollEvents() bool {
	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
				quit = true
			}
		}
	}
	return quit
}

// upload copies the framebuffer into the locked texture row by row, honouring
// the texture pitch. RGBA8888 is a packed native-endian 32-bit format.
func upload(texture *sdl.Texture, fb *graphics.Framebuffer) error {
	pixels, pitch, err := texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("sdl lock texture: %w", err)
	}
	defer texture.Unlock()

	for y := 0; y < fb.Height; y++ {
		row := pixels[y*pitch:]
		for x, c := range fb.Pix[y*fb.Width : (y+1)*fb.Width] {
			binary.NativeEndian.PutUint32(row[x*4:], c)
		}
	}
	return nil
}
