package puzzle15

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slide15/internal/config"
	"github.com/vovakirdan/slide15/internal/core"
)

// ID is the game identifier used for logs and screenshots.
const ID = "puzzle15"

// Phase is the top-level screen the game is on.
type Phase int

const (
	PhaseTitle          Phase = iota // Counting idle ticks until Start
	PhaseTitleRelease                // Start pressed, waiting for release
	PhasePlaying                     // Session in progress
	PhaseFlashing                    // Win flash
	PhaseAwaitRestart                // Solved board shown, waiting for Start
	PhaseRestartRelease              // Start pressed, waiting for release
)

func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhaseTitleRelease:
		return "title_release"
	case PhasePlaying:
		return "playing"
	case PhaseFlashing:
		return "flashing"
	case PhaseAwaitRestart:
		return "await_restart"
	case PhaseRestartRelease:
		return "restart_release"
	default:
		return "unknown"
	}
}

// Game drives the title screen, play sessions and the win sequence, one
// tick at a time. It never blocks; the platform calls Step once per frame.
type Game struct {
	settings config.Gameplay
	logger   *log.Logger
	display  core.Display
	title    *Renderer

	fixedSeed   int64
	seedCounter uint64
	seed        int64
	tick        uint64
	phase       Phase
	session     *Session
	sessions    int

	flashBeat  int
	flashTicks int
}

// New creates a game with the given timing settings. A nil logger discards output.
func New(settings config.Gameplay, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		settings: settings,
		logger:   logger.With("game", ID),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "15 Puzzle"
}

// Reset binds the game to a display and shows the title screen.
// A non-zero cfg.Seed replaces the idle-tick seed for reproducible scrambles.
func (g *Game) Reset(cfg core.RuntimeConfig, display core.Display) {
	g.display = display
	g.title = NewRenderer(display, NewBoard())
	g.fixedSeed = cfg.Seed
	g.seedCounter = 0
	g.seed = 0
	g.tick = 0
	g.session = nil
	g.sessions = 0
	g.flashBeat = 0
	g.flashTicks = 0

	display.SetPower(false)
	g.title.DrawTitle()
	display.SetVisible(true)
	display.SetPower(true)

	g.phase = PhaseTitle
}

// Step advances the game by one tick with the buttons held during it.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	switch g.phase {
	case PhaseTitle:
		g.seedCounter++
		if in.Has(core.ActionStart) {
			g.phase = PhaseTitleRelease
		}

	case PhaseTitleRelease:
		if !in.Has(core.ActionStart) {
			g.startSession()
		}

	case PhasePlaying:
		g.session.Tick(in)
		if g.session.Won() {
			g.logger.Info("puzzle solved", "moves", g.session.Moves(), "tick", g.tick)
			g.beginFlash()
		}

	case PhaseFlashing:
		g.advanceFlash()

	case PhaseAwaitRestart:
		g.seedCounter++
		if in.Has(core.ActionStart) {
			g.phase = PhaseRestartRelease
		}

	case PhaseRestartRelease:
		if !in.Has(core.ActionStart) {
			g.startSession()
		}
	}

	return core.StepResult{State: g.State()}
}

// startSession seeds the random source and builds a new session.
func (g *Game) startSession() {
	g.seed = int64(g.seedCounter)
	if g.fixedSeed != 0 {
		g.seed = g.fixedSeed + int64(g.sessions)
	}
	rng := rand.New(rand.NewSource(g.seed))

	g.sessions++
	g.session = NewSession(g.display, rng, g.settings.InputDelay, g.logger)
	g.phase = PhasePlaying

	g.logger.Info("session started", "session", g.sessions, "seed", g.seed)
}

func (g *Game) beginFlash() {
	g.phase = PhaseFlashing
	g.flashBeat = 0
	g.flashTicks = 0
	g.session.Renderer().FlashBeat(0)
}

// advanceFlash holds each beat for FlashFrames ticks, then paints the next one.
func (g *Game) advanceFlash() {
	g.flashTicks++
	if g.flashTicks < g.settings.FlashFrames {
		return
	}

	g.flashTicks = 0
	g.flashBeat++
	if g.flashBeat >= g.settings.FlashBeats {
		g.phase = PhaseAwaitRestart
		return
	}
	g.session.Renderer().FlashBeat(g.flashBeat)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := core.GameState{Playing: g.session != nil}
	if g.session != nil {
		state.Moves = g.session.Moves()
		state.Won = g.session.Won()
	}
	return state
}

// Phase returns the current top-level phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Session returns the current session, or nil on the title screen.
func (g *Game) Session() *Session {
	return g.session
}

// StatusLine returns a one-line description of what the player can do.
func (g *Game) StatusLine() string {
	switch g.phase {
	case PhaseTitle, PhaseTitleRelease:
		return "Press Enter to start"
	case PhaseFlashing:
		return "Solved!"
	case PhaseAwaitRestart, PhaseRestartRelease:
		return "Solved! Press Enter to play again"
	default:
		return "Arrange the tiles 1-15"
	}
}
