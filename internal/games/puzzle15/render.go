package puzzle15

import (
	"github.com/vovakirdan/slide15/internal/core"
)

// BoardView is the read-only part of the board the renderer needs.
type BoardView interface {
	At(p Pos) uint8
}

// Renderer projects board, cursor and counter state onto a two-layer Display.
// Every call writes only the tiles it names; nothing is repainted implicitly.
type Renderer struct {
	display core.Display
	board   BoardView
}

// NewRenderer creates a renderer drawing b onto d.
func NewRenderer(d core.Display, b BoardView) *Renderer {
	return &Renderer{display: d, board: b}
}

// CellRect returns the 3x3 tile block occupied by board cell p.
func CellRect(p Pos) core.Rect {
	return core.NewRect(GridX+p.Col*CellW, GridY+p.Row*CellH, CellW, CellH)
}

func (r *Renderer) fillAttr(rect core.Rect, band uint8) {
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			r.display.WriteAttribute(x, y, band)
		}
	}
}

func (r *Renderer) fillContent(rect core.Rect, tile uint8) {
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			r.display.WriteContent(x, y, tile)
		}
	}
}

// Clear blanks the whole display and paints it with band.
func (r *Renderer) Clear(band uint8) {
	all := core.NewRect(0, 0, DisplayWidth, DisplayHeight)
	r.fillContent(all, TileBlank)
	r.fillAttr(all, band)
}

// DrawCell repaints both layers of one board cell.
func (r *Renderer) DrawCell(p Pos) {
	tile := r.board.At(p)
	rect := CellRect(p)

	r.fillAttr(rect, BandFor(tile))

	if tile == EmptyTile {
		r.fillContent(rect, TileEmptyCell)
		return
	}

	x, y := rect.X, rect.Y
	r.display.WriteContent(x, y, TileTL)
	r.display.WriteContent(x+1, y, TileT)
	r.display.WriteContent(x+2, y, TileTR)
	r.display.WriteContent(x, y+1, TileL)
	r.display.WriteContent(x+2, y+1, TileR)
	r.display.WriteContent(x, y+2, TileBL)
	r.display.WriteContent(x+1, y+2, TileB)
	r.display.WriteContent(x+2, y+2, TileBR)

	if tile <= 9 {
		r.display.WriteContent(x+1, y+1, DigitTile(int(tile)))
		return
	}

	// Two digits take the center and right tiles of the middle row.
	tens, ones := PairTiles(tile)
	r.display.WriteContent(x+1, y+1, tens)
	r.display.WriteContent(x+2, y+1, ones)
}

// DrawBoard repaints every cell. Only used when a session's screen is built.
func (r *Renderer) DrawBoard() {
	for row := range GridSize {
		for col := range GridSize {
			r.DrawCell(Pos{Row: row, Col: col})
		}
	}
}

// DrawBorder draws the outer frame one tile outside the board area.
func (r *Renderer) DrawBorder() {
	x1, y1 := GridX-1, GridY-1
	x2, y2 := GridX+GridSize*CellW, GridY+GridSize*CellH

	for x := x1; x <= x2; x++ {
		r.display.WriteAttribute(x, y1, BandUI)
		r.display.WriteAttribute(x, y2, BandUI)
	}
	for y := y1; y <= y2; y++ {
		r.display.WriteAttribute(x1, y, BandUI)
		r.display.WriteAttribute(x2, y, BandUI)
	}

	r.display.WriteContent(x1, y1, FrameTL)
	r.display.WriteContent(x2, y1, FrameTR)
	r.display.WriteContent(x1, y2, FrameBL)
	r.display.WriteContent(x2, y2, FrameBR)

	for x := x1 + 1; x < x2; x++ {
		r.display.WriteContent(x, y1, FrameT)
		r.display.WriteContent(x, y2, FrameB)
	}
	for y := y1 + 1; y < y2; y++ {
		r.display.WriteContent(x1, y, FrameL)
		r.display.WriteContent(x2, y, FrameR)
	}
}

// DrawHUD paints the HUD row and the move counter right-aligned in three digits.
// Counts above 999 show as 999.
func (r *Renderer) DrawHUD(moves int) {
	for x := HUDX; x < HUDX+HUDWidth; x++ {
		r.display.WriteAttribute(x, HUDY, BandText)
	}
	r.putNumber(HUDX+1, HUDY, moves)
}

// putNumber draws n right-aligned in a 3-tile field, blanking leading positions.
func (r *Renderer) putNumber(x, y, n int) {
	n = core.Clamp(n, 0, 999)
	hundreds := n / 100
	tens := (n / 10) % 10
	ones := n % 10

	switch {
	case hundreds > 0:
		r.display.WriteContent(x, y, DigitTile(hundreds))
		r.display.WriteContent(x+1, y, DigitTile(tens))
	case tens > 0:
		r.display.WriteContent(x, y, TileBlank)
		r.display.WriteContent(x+1, y, DigitTile(tens))
	default:
		r.display.WriteContent(x, y, TileBlank)
		r.display.WriteContent(x+1, y, TileBlank)
	}
	r.display.WriteContent(x+2, y, DigitTile(ones))
}

// DrawCursor highlights (show) or restores the four corner tiles of cell p.
// Only the attribute layer is touched.
func (r *Renderer) DrawCursor(p Pos, show bool) {
	band := BandWin
	if !show {
		band = BandFor(r.board.At(p))
	}
	for _, c := range CellRect(p).Corners() {
		r.display.WriteAttribute(c[0], c[1], band)
	}
}

// FlashBeat paints one beat of the win flash over the whole board:
// even beats use the win band, odd beats restore each cell's own band.
func (r *Renderer) FlashBeat(beat int) {
	for row := range GridSize {
		for col := range GridSize {
			p := Pos{Row: row, Col: col}
			band := BandWin
			if beat%2 == 1 {
				band = BandFor(r.board.At(p))
			}
			r.fillAttr(CellRect(p), band)
		}
	}
}

// DrawTitle paints the title screen: a "15" label over a small puzzle icon.
func (r *Renderer) DrawTitle() {
	r.Clear(BandText)

	r.display.WriteContent(7, 5, DigitTile(1))
	r.display.WriteContent(9, 5, DigitTile(5))

	r.display.WriteContent(7, 7, TileTL)
	r.display.WriteContent(8, 7, TileT)
	r.display.WriteContent(9, 7, TileT)
	r.display.WriteContent(10, 7, TileTR)

	r.display.WriteContent(7, 8, TileL)
	r.display.WriteContent(8, 8, DigitTile(1))
	r.display.WriteContent(9, 8, DigitTile(2))
	r.display.WriteContent(10, 8, TileR)

	r.display.WriteContent(7, 9, TileL)
	r.display.WriteContent(8, 9, DigitTile(3))
	r.display.WriteContent(9, 9, TileEmptyCell)
	r.display.WriteContent(10, 9, TileR)

	r.display.WriteContent(7, 10, TileBL)
	r.display.WriteContent(8, 10, TileB)
	r.display.WriteContent(9, 10, TileB)
	r.display.WriteContent(10, 10, TileBR)

	r.display.WriteAttribute(8, 8, BandBlue)
	r.display.WriteAttribute(9, 8, BandGreen)
	r.display.WriteAttribute(8, 9, BandOrange)
	r.display.WriteAttribute(9, 9, BandEmpty)
}
