// Package puzzle15 implements the 15-puzzle: a 4x4 sliding-tile board scrambled
// by a random walk of the empty cell, played with a cursor on a two-layer tile display.
package puzzle15

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// GridSize is the board dimension.
	GridSize = 4

	// CellCount is the number of board cells (and tile identifiers, 0 included).
	CellCount = GridSize * GridSize

	// EmptyTile marks the empty cell.
	EmptyTile uint8 = 0
)

// Pos is a board coordinate, row and column in [0, GridSize).
type Pos struct {
	Row, Col int
}

// InBounds reports whether p lies on the board.
func (p Pos) InBounds() bool {
	return p.Row >= 0 && p.Row < GridSize && p.Col >= 0 && p.Col < GridSize
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Board is the 4x4 grid of tile identifiers. The empty cell position is cached
// and only ever changes together with the cell it names.
type Board struct {
	cells [GridSize][GridSize]uint8
	empty Pos
}

// NewBoard returns a board in the solved arrangement.
func NewBoard() *Board {
	b := &Board{}
	b.Initialize()
	return b
}

// FromCells builds a board from an explicit arrangement.
// The cells must hold each identifier 0..15 exactly once.
func FromCells(cells [GridSize][GridSize]uint8) (*Board, error) {
	b := &Board{cells: cells}
	if !b.IsPermutation() {
		return nil, errors.New("puzzle15: cells are not a permutation of 0..15")
	}
	for row := range GridSize {
		for col := range GridSize {
			if cells[row][col] == EmptyTile {
				b.empty = Pos{Row: row, Col: col}
			}
		}
	}
	return b, nil
}

// Initialize resets the board to 1..15 in row-major order with the empty cell last.
func (b *Board) Initialize() {
	val := uint8(1)
	for row := range GridSize {
		for col := range GridSize {
			if row == GridSize-1 && col == GridSize-1 {
				b.cells[row][col] = EmptyTile
				continue
			}
			b.cells[row][col] = val
			val++
		}
	}
	b.empty = Pos{Row: GridSize - 1, Col: GridSize - 1}
}

// At returns the tile identifier at p.
func (b *Board) At(p Pos) uint8 {
	return b.cells[p.Row][p.Col]
}

// Empty returns the position of the empty cell.
func (b *Board) Empty() Pos {
	return b.empty
}

// Cells returns a copy of the grid.
func (b *Board) Cells() [GridSize][GridSize]uint8 {
	return b.cells
}

// Swap slides the tile at other into emptyPos and leaves other empty.
// emptyPos must hold the empty tile; anything else is a caller bug and panics.
func (b *Board) Swap(emptyPos, other Pos) {
	if b.cells[emptyPos.Row][emptyPos.Col] != EmptyTile {
		panic(fmt.Sprintf("puzzle15: swap into non-empty cell %v", emptyPos))
	}
	b.cells[emptyPos.Row][emptyPos.Col] = b.cells[other.Row][other.Col]
	b.cells[other.Row][other.Col] = EmptyTile
	b.empty = other
}

// IsSolved reports whether the board reads 1..15 in row-major order with the
// empty cell last.
func (b *Board) IsSolved() bool {
	expected := uint8(1)
	for row := range GridSize {
		for col := range GridSize {
			if row == GridSize-1 && col == GridSize-1 {
				return b.cells[row][col] == EmptyTile
			}
			if b.cells[row][col] != expected {
				return false
			}
			expected++
		}
	}
	return true
}

// IsPermutation reports whether every identifier 0..15 appears exactly once.
func (b *Board) IsPermutation() bool {
	var seen [CellCount]bool
	for row := range GridSize {
		for col := range GridSize {
			v := b.cells[row][col]
			if int(v) >= CellCount || seen[v] {
				return false
			}
			seen[v] = true
		}
	}
	return true
}

// Consistent reports whether the cached empty position names the empty cell.
func (b *Board) Consistent() bool {
	return b.IsPermutation() && b.At(b.empty) == EmptyTile
}

// Solvable reports whether the arrangement can be slid back to the solved one.
// On an even-width board that holds when the inversion count is even exactly
// when the empty cell sits on an odd row counted from the bottom.
func (b *Board) Solvable() bool {
	var flat []uint8
	for row := range GridSize {
		for col := range GridSize {
			if v := b.cells[row][col]; v != EmptyTile {
				flat = append(flat, v)
			}
		}
	}

	inversions := 0
	for i := range flat {
		for j := i + 1; j < len(flat); j++ {
			if flat[i] > flat[j] {
				inversions++
			}
		}
	}

	rowFromBottom := GridSize - b.empty.Row
	return (inversions%2 == 0) == (rowFromBottom%2 == 1)
}

// String renders the board as a text grid with "." for the empty cell.
func (b *Board) String() string {
	var sb strings.Builder
	for row := range GridSize {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for col := range GridSize {
			v := b.cells[row][col]
			if v == EmptyTile {
				sb.WriteString("  .")
				continue
			}
			fmt.Fprintf(&sb, "%3d", v)
		}
	}
	return sb.String()
}
