package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slide15/internal/config"
	"github.com/vovakirdan/slide15/internal/core"
	"github.com/vovakirdan/slide15/internal/games/puzzle15"
)

// Game is what the terminal loop drives. Games contain pure logic with no
// Bubble Tea dependency; they draw into the display they are reset with.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig, display core.Display)
	Step(in core.InputFrame) core.StepResult
	StatusLine() string
}

// Options configures a terminal session.
type Options struct {
	Config        config.Config
	Runtime       core.RuntimeConfig
	Logger        *log.Logger
	ScreenshotDir string // Defaults to ~/.slide15/screenshots
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

// Model is the Bubble Tea model for running the puzzle.
type Model struct {
	game    Game
	tiles   *core.TileMap
	held    *HeldInput
	keys    *KeyMapper
	help    help.Model
	glyphs  *GlyphSet
	palette Palette
	config  core.RuntimeConfig
	logger  *log.Logger

	state         core.GameState
	screenshotDir string
	notice        string
	width         int
	height        int
	quitting      bool
}

// MinWidth and MinHeight are the smallest terminal that fits the display and status line.
const (
	MinWidth  = puzzle15.DisplayWidth * GlyphWidth
	MinHeight = puzzle15.DisplayHeight + 2
)

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) (Model, error) {
	glyphs, err := GlyphsFor(opts.Config.Display.Glyphs)
	if err != nil {
		return Model{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	dir := opts.ScreenshotDir
	if dir == "" {
		if home, homeErr := os.UserHomeDir(); homeErr == nil {
			dir = filepath.Join(home, ".slide15", "screenshots")
		}
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:          game,
		tiles:         core.NewTileMap(puzzle15.DisplayWidth, puzzle15.DisplayHeight),
		held:          NewHeldInput(opts.Config.Input.HoldFrames),
		keys:          NewKeyMapper(),
		help:          h,
		glyphs:        &glyphs,
		palette:       NewPalette(opts.Config.Palette),
		config:        cfg,
		logger:        logger,
		screenshotDir: dir,
	}, nil
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config, m.tiles)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()

	switch {
	case key.Matches(msg, keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.notice = "screenshot failed"
		} else {
			m.logger.Info("screenshot saved", "path", path)
			m.notice = "saved " + path
		}
		return m, nil

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.held.Press(action)

	return m, nil
}

// handleTick runs one simulation step with the buttons held this frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.held.Frame())
	m.state = result.State

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current display as plain text and returns its path.
func (m Model) saveScreenshot() (string, error) {
	if m.screenshotDir == "" {
		return "", fmt.Errorf("tui: no screenshot directory")
	}
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(PlainTileMap(m.tiles, m.glyphs)+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width > 0 && (m.width < MinWidth || m.height < MinHeight) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d\nPress q to quit.",
			MinWidth, MinHeight, m.width, m.height)
	}

	status := titleStyle.Render(m.game.Title()) + "  " + statusStyle.Render(m.game.StatusLine())
	if m.state.Playing {
		status += statusStyle.Render(fmt.Sprintf("  moves %d", m.state.Moves))
	}
	if m.notice != "" {
		status += "  " + noticeStyle.Render(m.notice)
	}

	return RenderTileMap(m.tiles, m.glyphs, m.palette) + "\n" + status + "\n" + m.help.View(m.keys.Keys())
}

// Run starts the Bubble Tea program for game.
func Run(game Game, opts Options) error {
	model, err := NewModel(game, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
