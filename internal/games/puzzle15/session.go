package puzzle15

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slide15/internal/core"
)

// Status is the state of one play session.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
)

func (s Status) String() string {
	if s == StatusWon {
		return "won"
	}
	return "in_progress"
}

// Session owns one scrambled board, the cursor, the move counter and the
// input cooldown. It is discarded when the next session starts.
type Session struct {
	board    *Board
	engine   *Engine
	renderer *Renderer
	display  core.Display
	logger   *log.Logger

	cursor     Pos
	cooldown   int
	inputDelay int
	status     Status
	shuffle    []Direction
}

// NewSession scrambles a fresh board with rng and draws the play screen.
func NewSession(display core.Display, rng RandomSource, inputDelay int, logger *log.Logger) *Session {
	board := NewBoard()
	shuffle := Shuffle(board, rng)

	s := &Session{
		board:      board,
		engine:     NewEngine(board),
		renderer:   NewRenderer(display, board),
		display:    display,
		logger:     logger,
		inputDelay: inputDelay,
		shuffle:    shuffle,
	}
	s.drawScreen()

	logger.Debug("board scrambled", "accepted", len(shuffle), "empty", board.Empty())
	return s
}

// drawScreen builds the whole play screen with the display switched off.
func (s *Session) drawScreen() {
	s.display.SetPower(false)

	s.renderer.Clear(BandUI)
	s.renderer.DrawBorder()
	s.renderer.DrawBoard()
	s.renderer.DrawHUD(s.engine.Moves())
	s.renderer.DrawCursor(s.cursor, true)

	s.display.SetVisible(true)
	s.display.SetPower(true)
}

// Tick processes one frame of held input.
//
// While the cooldown runs it only counts down. Otherwise directions move the
// cursor and either action button slides the tile under it; any of these
// restarts the cooldown, even when the slide is rejected.
func (s *Session) Tick(in core.InputFrame) {
	if s.status == StatusWon {
		return
	}

	if s.cooldown > 0 {
		s.cooldown--
		return
	}

	if in.HasAny(core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight) {
		s.moveCursor(in)
		s.cooldown = s.inputDelay
	}

	if in.Has(core.ActionPrimary) {
		s.slideAtCursor()
		s.cooldown = s.inputDelay
	}

	if in.Has(core.ActionAlternate) {
		s.slideAtCursor()
		s.cooldown = s.inputDelay
	}
}

// moveCursor steps the cursor one cell per held direction, clamped to the board.
func (s *Session) moveCursor(in core.InputFrame) {
	s.renderer.DrawCursor(s.cursor, false)

	row, col := s.cursor.Row, s.cursor.Col
	if in.Has(core.ActionUp) {
		row = core.Clamp(row-1, 0, GridSize-1)
	}
	if in.Has(core.ActionDown) {
		row = core.Clamp(row+1, 0, GridSize-1)
	}
	if in.Has(core.ActionLeft) {
		col = core.Clamp(col-1, 0, GridSize-1)
	}
	if in.Has(core.ActionRight) {
		col = core.Clamp(col+1, 0, GridSize-1)
	}
	s.cursor = Pos{Row: row, Col: col}

	s.renderer.DrawCursor(s.cursor, true)
}

// slideAtCursor tries to move the tile under the cursor and redraws only
// the two changed cells, the counter and the cursor.
func (s *Session) slideAtCursor() {
	if s.status == StatusWon || s.board.At(s.cursor) == EmptyTile {
		return
	}

	mv, ok := s.engine.TryMove(s.cursor)
	if !ok {
		return
	}

	for _, p := range mv.Dirty() {
		s.renderer.DrawCell(p)
	}
	s.renderer.DrawHUD(s.engine.Moves())
	s.renderer.DrawCursor(s.cursor, true)

	s.logger.Debug("tile moved", "tile", mv.Tile, "from", mv.From, "to", mv.To, "moves", s.engine.Moves())

	if s.board.IsSolved() {
		s.status = StatusWon
	}
}

// Renderer returns the renderer bound to this session's board.
func (s *Session) Renderer() *Renderer {
	return s.renderer
}

// Board returns the session board. Callers must not mutate it.
func (s *Session) Board() *Board {
	return s.board
}

// Cursor returns the selected cell.
func (s *Session) Cursor() Pos {
	return s.cursor
}

// Moves returns the number of successful moves.
func (s *Session) Moves() int {
	return s.engine.Moves()
}

// Cooldown returns the remaining input cooldown in ticks.
func (s *Session) Cooldown() int {
	return s.cooldown
}

// Status returns whether the session is still in progress.
func (s *Session) Status() Status {
	return s.status
}

// Won reports whether the board has been solved.
func (s *Session) Won() bool {
	return s.status == StatusWon
}

// ShuffleMoves returns the accepted directions of the scramble.
func (s *Session) ShuffleMoves() []Direction {
	return s.shuffle
}
