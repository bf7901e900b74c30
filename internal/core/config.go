package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 lets the game derive one from idle title ticks
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Moves   int  // Moves made in the current session
	Playing bool // A session is in progress (past the title screen)
	Won     bool // The current session has been solved
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
