package puzzle15

// Move describes one successful slide. Tile moved from From into To;
// From is the new empty cell and To is the old one.
type Move struct {
	Tile uint8
	From Pos
	To   Pos
}

// Dirty returns the only two cells whose displayed content changed.
func (m Move) Dirty() [2]Pos {
	return [2]Pos{m.To, m.From}
}

// Adjacent reports whether a and b differ by exactly one row or one column, not both.
func Adjacent(a, b Pos) bool {
	dr := a.Row - b.Row
	dc := a.Col - b.Col
	return (dr == 0 && (dc == 1 || dc == -1)) ||
		(dc == 0 && (dr == 1 || dr == -1))
}

// Engine validates and applies player moves and counts them.
type Engine struct {
	board *Board
	moves int
}

// NewEngine creates an engine that mutates b.
func NewEngine(b *Board) *Engine {
	return &Engine{board: b}
}

// TryMove slides the tile at target into the empty cell if the two are
// cardinally adjacent. On failure the board and counter are untouched.
func (e *Engine) TryMove(target Pos) (Move, bool) {
	if !target.InBounds() {
		return Move{}, false
	}

	empty := e.board.Empty()
	if !Adjacent(target, empty) {
		return Move{}, false
	}

	tile := e.board.At(target)
	e.board.Swap(empty, target)
	e.moves++

	return Move{Tile: tile, From: target, To: empty}, true
}

// Moves returns the number of successful moves.
func (e *Engine) Moves() int {
	return e.moves
}
