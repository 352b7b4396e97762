// raycaster renders a polyline world of colored wall segments from a
// first-person viewpoint, one ray per framebuffer column.
//
// Usage:
//
//	raycaster [--config file.yaml] [--backend ebiten|tui|sdl] [--log-level debug|info|warn|error]
//
// Controls: W/S move along Y, A/D along X, Tab switches depth mode, F3 shows
// the debug overlay, Escape (or q in the terminal) quits.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"raycaster/internal/config"
	"raycaster/internal/game"
	"raycaster/internal/platform"
)

var (
	flagConfig   string
	flagBackend  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "raycaster",
	Short: "Segment raycaster",
	Long: `Renders a world of colored wall segments from a first-person view.

Backends:
  ebiten - window through Ebitengine (default)
  tui    - half-block rendering in the terminal
  sdl    - SDL2 window, needs a build with -tags sdl

Examples:
  raycaster
  raycaster --backend tui
  raycaster --config ./room.yaml --log-level debug`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRaycaster,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config YAML (empty = built-in defaults)")
	rootCmd.Flags().StringVar(&flagBackend, "backend", "", "Presentation backend: ebiten, tui, sdl (overrides config)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
}

// loadSettings loads the config file and applies the command-line overrides.
func loadSettings(configPath, backend, logLevel string) (*config.Config, log.Level, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, 0, err
	}

	if backend != "" {
		cfg.Display.Backend = backend
	}
	if logLevel != "" {
		cfg.Debug.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, 0, err
	}

	level, err := log.ParseLevel(cfg.Debug.LogLevel)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: log level: %v", config.ErrInvalidConfig, err)
	}
	return cfg, level, nil
}

func newLogger(level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "raycaster",
		Level:           level,
	})
}

func runRaycaster(cmd *cobra.Command, args []string) error {
	cfg, level, err := loadSettings(flagConfig, flagBackend, flagLogLevel)
	if err != nil {
		return err
	}
	logger := newLogger(level)

	backend, err := platform.New(cfg.Display.Backend)
	if err != nil {
		return err
	}

	g, err := game.NewGame(cfg, logger)
	if err != nil {
		logger.Error("failed to start", "error", err)
		return err
	}
	defer g.Close()

	logger.Info("starting", "backend", cfg.Display.Backend, "config", flagConfig)
	if err := backend.Run(g); err != nil {
		logger.Error("backend stopped", "backend", cfg.Display.Backend, "error", err)
		return err
	}
	logger.Info("bye", "frames", g.FrameCount())
	return nil
}
