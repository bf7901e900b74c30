package puzzle15

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Phase     string
	Seed      int64
	Sessions  int
	Board     [GridSize][GridSize]uint8
	Empty     Pos
	Cursor    Pos
	Moves     int
	Cooldown  int
	Status    string
	FlashBeat int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		Phase:     g.phase.String(),
		Seed:      g.seed,
		Sessions:  g.sessions,
		FlashBeat: g.flashBeat,
	}

	if s := g.session; s != nil {
		snap.Board = s.board.Cells()
		snap.Empty = s.board.Empty()
		snap.Cursor = s.cursor
		snap.Moves = s.Moves()
		snap.Cooldown = s.cooldown
		snap.Status = s.status.String()
	}

	return snap
}
