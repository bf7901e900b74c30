package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/slide15/internal/config"
	"github.com/vovakirdan/slide15/internal/core"
	"github.com/vovakirdan/slide15/internal/games/puzzle15"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	resets  int
	display core.Display
	frames  []core.InputFrame
}

func (g *fakeGame) ID() string         { return "fake" }
func (g *fakeGame) Title() string      { return "Fake" }
func (g *fakeGame) StatusLine() string { return "status" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig, display core.Display) {
	g.resets++
	g.display = display
	display.WriteContent(0, 0, puzzle15.DigitTile(7))
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: core.GameState{Playing: true, Moves: len(g.frames)}}
}

func newTestModel(t *testing.T, g Game) Model {
	t.Helper()

	m, err := NewModel(g, Options{
		Config:        config.Default(),
		Runtime:       core.DefaultConfig(),
		ScreenshotDir: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelKeyBecomesHeldButton(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g)
	m.Init()

	if g.resets != 1 {
		t.Fatalf("Reset called %d times, expected 1", g.resets)
	}

	m = update(m, tea.KeyMsg{Type: tea.KeyRight})
	hold := config.Default().Input.HoldFrames
	for range hold + 1 {
		m = update(m, TickMsg{})
	}

	if len(g.frames) != hold+1 {
		t.Fatalf("Step called %d times, expected %d", len(g.frames), hold+1)
	}
	for i := range hold {
		if !g.frames[i].Has(core.ActionRight) {
			t.Errorf("frame %d: Right should be held", i)
		}
	}
	if g.frames[hold].Has(core.ActionRight) {
		t.Error("Right should be released after the hold window")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, &fakeGame{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should return tea.Quit")
	}
	if next.(Model).View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelScreenshot(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g)
	m.Init()

	m = update(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.screenshotDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("found %d screenshots, expected 1", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "fake_") || filepath.Ext(name) != ".txt" {
		t.Errorf("screenshot name = %q", name)
	}

	data, err := os.ReadFile(filepath.Join(m.screenshotDir, name))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.HasPrefix(string(data), " 7") {
		t.Errorf("screenshot does not start with the drawn tile: %q", string(data)[:10])
	}
	if !strings.Contains(m.View(), "saved ") {
		t.Error("View() should report the saved screenshot")
	}
}

func TestModelTooSmall(t *testing.T) {
	m := newTestModel(t, &fakeGame{})
	m.Init()

	m = update(m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("View() should warn about a small terminal")
	}

	m = update(m, tea.WindowSizeMsg{Width: MinWidth, Height: MinHeight})
	if strings.Contains(m.View(), "Terminal too small") {
		t.Error("View() should draw the game once the terminal is large enough")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t, &fakeGame{})

	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if !m.help.ShowAll {
		t.Error("? should expand the help view")
	}
	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if m.help.ShowAll {
		t.Error("? should collapse the help view")
	}
}

func TestModelRejectsUnknownGlyphs(t *testing.T) {
	cfg := config.Default()
	cfg.Display.Glyphs = "braille"

	if _, err := NewModel(&fakeGame{}, Options{Config: cfg}); err == nil {
		t.Error("NewModel() should fail for an unknown glyph set")
	}
}
