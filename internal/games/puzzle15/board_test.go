package puzzle15

import (
	"strings"
	"testing"
)

var solvedCells = [GridSize][GridSize]uint8{
	{1, 2, 3, 4},
	{5, 6, 7, 8},
	{9, 10, 11, 12},
	{13, 14, 15, 0},
}

func TestInitialize(t *testing.T) {
	b := NewBoard()

	if b.Cells() != solvedCells {
		t.Errorf("Initialize() cells =\n%v\nexpected\n%v", b.Cells(), solvedCells)
	}
	if b.Empty() != (Pos{Row: 3, Col: 3}) {
		t.Errorf("Empty() = %v, expected (3,3)", b.Empty())
	}
	if !b.IsSolved() {
		t.Error("Fresh board should be solved")
	}
	if !b.Consistent() {
		t.Error("Fresh board should be consistent")
	}
}

func TestIsSolvedRejectsEverySingleSwap(t *testing.T) {
	for i := range CellCount {
		for j := i + 1; j < CellCount; j++ {
			cells := solvedCells
			a := Pos{Row: i / GridSize, Col: i % GridSize}
			c := Pos{Row: j / GridSize, Col: j % GridSize}
			cells[a.Row][a.Col], cells[c.Row][c.Col] = cells[c.Row][c.Col], cells[a.Row][a.Col]

			b, err := FromCells(cells)
			if err != nil {
				t.Fatalf("FromCells() failed: %v", err)
			}
			if b.IsSolved() {
				t.Errorf("IsSolved() = true after swapping %v and %v", a, c)
			}
		}
	}
}

func TestSwap(t *testing.T) {
	b := NewBoard()

	b.Swap(Pos{Row: 3, Col: 3}, Pos{Row: 3, Col: 2})

	if b.At(Pos{Row: 3, Col: 3}) != 15 {
		t.Errorf("At(3,3) = %d, expected 15", b.At(Pos{Row: 3, Col: 3}))
	}
	if b.At(Pos{Row: 3, Col: 2}) != EmptyTile {
		t.Errorf("At(3,2) = %d, expected empty", b.At(Pos{Row: 3, Col: 2}))
	}
	if b.Empty() != (Pos{Row: 3, Col: 2}) {
		t.Errorf("Empty() = %v, expected (3,2)", b.Empty())
	}
	if !b.Consistent() {
		t.Error("Board should stay consistent after Swap")
	}
}

func TestSwapIntoOccupiedCellPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Swap into a non-empty cell should panic")
		}
	}()

	b := NewBoard()
	b.Swap(Pos{Row: 0, Col: 0}, Pos{Row: 0, Col: 1})
}

func TestFromCells(t *testing.T) {
	cells := solvedCells
	cells[0][0], cells[3][3] = cells[3][3], cells[0][0]

	b, err := FromCells(cells)
	if err != nil {
		t.Fatalf("FromCells() failed: %v", err)
	}
	if b.Empty() != (Pos{Row: 0, Col: 0}) {
		t.Errorf("Empty() = %v, expected (0,0)", b.Empty())
	}

	dup := solvedCells
	dup[0][0] = 2
	if _, err := FromCells(dup); err == nil {
		t.Error("FromCells() should reject duplicate identifiers")
	}

	big := solvedCells
	big[1][1] = 16
	if _, err := FromCells(big); err == nil {
		t.Error("FromCells() should reject identifiers above 15")
	}
}

func TestSolvable(t *testing.T) {
	if !NewBoard().Solvable() {
		t.Error("Solved board should be solvable")
	}

	// The classic 14-15 swap cannot be solved.
	cells := solvedCells
	cells[3][1], cells[3][2] = cells[3][2], cells[3][1]
	b, _ := FromCells(cells)
	if b.Solvable() {
		t.Error("Board with 14 and 15 swapped should not be solvable")
	}

	// One legal slide keeps it solvable.
	b = NewBoard()
	b.Swap(Pos{Row: 3, Col: 3}, Pos{Row: 2, Col: 3})
	if !b.Solvable() {
		t.Error("Board one slide from solved should be solvable")
	}
}

func TestBoardString(t *testing.T) {
	s := NewBoard().String()
	lines := strings.Split(s, "\n")

	if len(lines) != GridSize {
		t.Fatalf("String() has %d lines, expected %d", len(lines), GridSize)
	}
	if lines[0] != "  1  2  3  4" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[3] != " 13 14 15  ." {
		t.Errorf("last line = %q", lines[3])
	}
}
