package puzzle15

// ShuffleSteps is the number of random-walk iterations used to scramble a board.
const ShuffleSteps = 200

// Direction names the side the empty cell moves toward: DirUp takes the tile
// from above into the empty cell.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight

	noDirection Direction = 0xFF
)

// Opposite returns the direction that undoes d. Opposites differ in the low bit.
func (d Direction) Opposite() Direction {
	return d ^ 1
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Neighbor returns the cell next to p in direction d, and whether it is on the board.
func (p Pos) Neighbor(d Direction) (Pos, bool) {
	n := p
	switch d {
	case DirUp:
		n.Row--
	case DirDown:
		n.Row++
	case DirLeft:
		n.Col--
	case DirRight:
		n.Col++
	default:
		return p, false
	}
	return n, n.InBounds()
}

// RandomSource yields small pseudo-random integers. *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Shuffle scrambles b with ShuffleSteps iterations of a random walk of the
// empty cell and returns the accepted directions in order.
//
// An iteration is skipped when the drawn direction undoes the last accepted
// one or would walk off the board. Every accepted step is a legal slide, so the
// result is always solvable.
func Shuffle(b *Board, rng RandomSource) []Direction {
	last := noDirection
	accepted := make([]Direction, 0, ShuffleSteps)

	for range ShuffleSteps {
		dir := Direction(rng.Intn(4))

		// Compared against the last accepted direction, not the last drawn one.
		if last != noDirection && dir == last.Opposite() {
			continue
		}

		empty := b.Empty()
		next, ok := empty.Neighbor(dir)
		if !ok {
			continue
		}

		b.Swap(empty, next)
		last = dir
		accepted = append(accepted, dir)
	}

	return accepted
}
