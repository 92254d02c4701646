package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Frames per second requested from the platform (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the frame controller state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
	PhaseWon
)

// String returns the display name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase stops the simulation until restart.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseWon
}

// GameState is returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	Phase    Phase   // Running, game over or won
	GameOver bool    // Whether the run has ended (lost or won)
	Paused   bool    // Whether the game is paused
	Elapsed  float64 // Simulated seconds since the last reset
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Sounds []Sound // Sounds triggered during this tick, in emission order
}
