package puzzle15

import (
	"math/rand"
	"testing"
)

// scriptedRNG returns its values in order, then repeats the last one.
type scriptedRNG struct {
	values []int
	calls  int
}

func (r *scriptedRNG) Intn(n int) int {
	i := r.calls
	r.calls++
	if i >= len(r.values) {
		i = len(r.values) - 1
	}
	return r.values[i] % n
}

func TestShuffleDrawsExactlyShuffleSteps(t *testing.T) {
	rng := &scriptedRNG{values: []int{0}}
	Shuffle(NewBoard(), rng)

	if rng.calls != ShuffleSteps {
		t.Errorf("Shuffle drew %d values, expected %d", rng.calls, ShuffleSteps)
	}
}

func TestShuffleChecksLastAcceptedDirection(t *testing.T) {
	rng := &scriptedRNG{values: []int{
		int(DirDown),  // off board from (3,3): skipped, nothing accepted yet
		int(DirUp),    // accepted, empty -> (2,3)
		int(DirRight), // off board: skipped, last accepted stays up
		int(DirDown),  // undoes last accepted (up): rejected
		int(DirLeft),  // accepted, empty -> (2,2)
		int(DirRight), // undoes left: rejected for the rest of the script
	}}

	b := NewBoard()
	accepted := Shuffle(b, rng)

	expected := []Direction{DirUp, DirLeft}
	if len(accepted) != len(expected) {
		t.Fatalf("accepted = %v, expected %v", accepted, expected)
	}
	for i := range expected {
		if accepted[i] != expected[i] {
			t.Errorf("accepted[%d] = %v, expected %v", i, accepted[i], expected[i])
		}
	}
	if b.Empty() != (Pos{Row: 2, Col: 2}) {
		t.Errorf("Empty() = %v, expected (2,2)", b.Empty())
	}
}

func TestShuffleNeverUndoesPreviousMove(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		accepted := Shuffle(NewBoard(), rand.New(rand.NewSource(seed)))
		for i := 1; i < len(accepted); i++ {
			if accepted[i] == accepted[i-1].Opposite() {
				t.Fatalf("seed %d: %v followed by %v at %d", seed, accepted[i-1], accepted[i], i)
			}
		}
	}
}

func TestShuffleKeepsPermutationAfterEveryStep(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		accepted := Shuffle(NewBoard(), rand.New(rand.NewSource(seed)))

		// Replay the same walk and check the board after each slide.
		b := NewBoard()
		for i, dir := range accepted {
			next, ok := b.Empty().Neighbor(dir)
			if !ok {
				t.Fatalf("seed %d: accepted step %d (%v) walks off the board", seed, i, dir)
			}
			b.Swap(b.Empty(), next)
			if !b.Consistent() {
				t.Fatalf("seed %d: board inconsistent after step %d", seed, i)
			}
		}
	}
}

func TestShuffledBoardIsSolvable(t *testing.T) {
	for seed := int64(1); seed <= 100; seed++ {
		b := NewBoard()
		accepted := Shuffle(b, rand.New(rand.NewSource(seed)))

		if !b.Solvable() {
			t.Fatalf("seed %d: scrambled board is not solvable:\n%s", seed, b)
		}

		// Walking the accepted directions backwards restores the solved board.
		for i := len(accepted) - 1; i >= 0; i-- {
			next, _ := b.Empty().Neighbor(accepted[i].Opposite())
			b.Swap(b.Empty(), next)
		}
		if !b.IsSolved() {
			t.Fatalf("seed %d: reversing the shuffle did not solve the board:\n%s", seed, b)
		}
	}
}

func TestShuffleDeterministic(t *testing.T) {
	b1 := NewBoard()
	b2 := NewBoard()
	Shuffle(b1, rand.New(rand.NewSource(1234)))
	Shuffle(b2, rand.New(rand.NewSource(1234)))

	if b1.Cells() != b2.Cells() {
		t.Errorf("Same seed should produce the same board:\n%s\nvs\n%s", b1, b2)
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := [][2]Direction{{DirUp, DirDown}, {DirLeft, DirRight}}
	for _, p := range pairs {
		if p[0].Opposite() != p[1] || p[1].Opposite() != p[0] {
			t.Errorf("%v and %v should be opposites", p[0], p[1])
		}
	}
}

func TestNeighbor(t *testing.T) {
	corner := Pos{Row: 0, Col: 0}

	if _, ok := corner.Neighbor(DirUp); ok {
		t.Error("Up from (0,0) should be off board")
	}
	if _, ok := corner.Neighbor(DirLeft); ok {
		t.Error("Left from (0,0) should be off board")
	}
	if n, ok := corner.Neighbor(DirDown); !ok || n != (Pos{Row: 1, Col: 0}) {
		t.Errorf("Down from (0,0) = %v, %v", n, ok)
	}
	if n, ok := corner.Neighbor(DirRight); !ok || n != (Pos{Row: 0, Col: 1}) {
		t.Errorf("Right from (0,0) = %v, %v", n, ok)
	}
}
