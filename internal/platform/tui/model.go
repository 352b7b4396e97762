package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"raycaster/internal/game"
)

// Model is the Bubble Tea model driving one game.
type Model struct {
	game     *game.Game
	keys     *heldKeys
	renderer *screenRenderer
	tickRate int
	width    int
	height   int
	quitting bool
}

// NewModel creates a model for a terminal of width x height cells.
func NewModel(g *game.Game, width, height int) Model {
	cfg := g.Config()
	return Model{
		game:     g,
		keys:     newHeldKeys(cfg.Display.KeyHoldFrames),
		renderer: newScreenRenderer(),
		tickRate: cfg.Display.TickRate,
		width:    width,
		height:   height,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key, ok, isQuit := mapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if ok {
		m.keys.press(key)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Step(m.keys)
	m.keys.tick()
	return m, tickCmd(m.tickRate)
}

// View renders the latest frame, with the overlay below it when enabled.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	rows := m.height
	var overlay []string
	if m.game.ShowOverlay() {
		overlay = m.game.OverlayLines()
		rows -= len(overlay)
	}
	// one cell per framebuffer column at most
	cols := min(m.width, m.game.Frame().Width)

	view := m.renderer.Render(m.game.Frame(), cols, rows)
	if len(overlay) > 0 {
		view += "\n" + renderOverlay(overlay, m.width)
	}
	return view
}

// Backend runs the game in the terminal.
type Backend struct{}

// Run takes over the terminal until q, Escape or ctrl+c.
func (Backend) Run(g *game.Game) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	// The alternate screen owns the terminal; keep log lines from tearing it.
	logger := g.Logger()
	prevLevel := logger.GetLevel()
	logger.SetLevel(log.FatalLevel)
	defer logger.SetLevel(prevLevel)

	p := tea.NewProgram(NewModel(g, width, height), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal backend: %w", err)
	}
	return nil
}
