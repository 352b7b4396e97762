package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Backend names accepted by display.backend and --backend.
const (
	BackendEbiten = "ebiten"
	BackendTUI    = "tui"
	BackendSDL    = "sdl"
)

// Depth modes accepted by rendering.depth_mode.
const (
	DepthModeOverdraw = "overdraw" // every hit drawn in world order, later walls win
	DepthModeNearest  = "nearest"  // only the closest hit per column is drawn
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all raycaster configuration values
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Screen    ScreenConfig    `yaml:"screen"`
	Camera    CameraConfig    `yaml:"camera"`
	Movement  MovementConfig  `yaml:"movement"`
	Player    PlayerConfig    `yaml:"player"`
	World     WorldConfig     `yaml:"world"`
	Rendering RenderingConfig `yaml:"rendering"`
	Debug     DebugConfig     `yaml:"debug"`
}

type DisplayConfig struct {
	Backend      string `yaml:"backend"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	VSync        bool   `yaml:"vsync"`

	// Terminal backend only
	TickRate      int `yaml:"tick_rate"`
	KeyHoldFrames int `yaml:"key_hold_frames"`
}

// ScreenConfig is the size of the framebuffer, not the window.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type CameraConfig struct {
	ViewPlaneDistance float32 `yaml:"view_plane_distance"`
}

type MovementConfig struct {
	Step float32 `yaml:"step"` // world units per frame
}

type PlayerConfig struct {
	Start    [2]float32 `yaml:"start"`
	Rotation float32    `yaml:"rotation"` // carried, not applied to rays
}

type WorldConfig struct {
	Points [][2]float32 `yaml:"points"`
	Colors []uint32     `yaml:"colors"` // packed 0xRRGGBBAA
}

type RenderingConfig struct {
	DepthMode  string `yaml:"depth_mode"`
	Workers    int    `yaml:"workers"` // 1 = inline, 0 = one per CPU
	ClearColor uint32 `yaml:"clear_color"`
}

type DebugConfig struct {
	Overlay       bool   `yaml:"overlay"`
	LogLevel      string `yaml:"log_level"`
	StatsInterval int    `yaml:"stats_interval"` // frames between stat logs, 0 disables
}

// DefaultConfig returns the embedded default configuration.
func DefaultConfig() *Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic("embedded default config is broken: " + err.Error())
	}
	return &cfg
}

// LoadConfig loads the defaults and applies filename on top of them.
// An empty filename returns the defaults.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()
	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", filename, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", filename, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values the renderer relies on.
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen size must be positive, got %dx%d", ErrInvalidConfig, c.Screen.Width, c.Screen.Height)
	}
	if c.Display.WindowWidth <= 0 || c.Display.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalidConfig, c.Display.WindowWidth, c.Display.WindowHeight)
	}
	// A zero view plane distance would make the centre column's direction the zero vector.
	if c.Camera.ViewPlaneDistance <= 0 {
		return fmt.Errorf("%w: camera.view_plane_distance must be positive, got %g", ErrInvalidConfig, c.Camera.ViewPlaneDistance)
	}
	if c.Rendering.Workers < 0 {
		return fmt.Errorf("%w: rendering.workers must not be negative, got %d", ErrInvalidConfig, c.Rendering.Workers)
	}
	switch c.Rendering.DepthMode {
	case DepthModeOverdraw, DepthModeNearest:
	default:
		return fmt.Errorf("%w: unknown rendering.depth_mode %q", ErrInvalidConfig, c.Rendering.DepthMode)
	}
	switch c.Display.Backend {
	case BackendEbiten, BackendTUI, BackendSDL:
	default:
		return fmt.Errorf("%w: unknown display.backend %q", ErrInvalidConfig, c.Display.Backend)
	}
	if c.Display.TickRate <= 0 {
		return fmt.Errorf("%w: display.tick_rate must be positive, got %d", ErrInvalidConfig, c.Display.TickRate)
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Screen.Width
}

func (c *Config) GetScreenHeight() int {
	return c.Screen.Height
}

func (c *Config) GetWindowWidth() int {
	return c.Display.WindowWidth
}

func (c *Config) GetWindowHeight() int {
	return c.Display.WindowHeight
}

func (c *Config) GetMoveStep() float32 {
	return c.Movement.Step
}

func (c *Config) GetViewPlaneDistance() float32 {
	return c.Camera.ViewPlaneDistance
}
