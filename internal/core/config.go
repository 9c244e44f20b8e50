package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	CanvasW      float64       // World width in canvas units
	CanvasH      float64       // World height in canvas units
	TickInterval time.Duration // Time between simulation ticks
	Seed         int64         // RNG seed for deterministic gameplay

	// MaxPlacementAttempts caps the item placement search. Zero or less
	// searches until a valid spot turns up.
	MaxPlacementAttempts int

	// Labels overrides player display names, keyed by player ID.
	Labels map[string]string
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		CanvasW:              800,
		CanvasH:              480,
		TickInterval:         50 * time.Millisecond,
		Seed:                 0, // 0 means use current time in platform layer
		MaxPlacementAttempts: 1000,
	}
}

// Phase is the top-level match state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseWon           // Terminal until Reset
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhaseWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// PlayerScore is one line of the scoreboard.
type PlayerScore struct {
	ID    string
	Label string
	Score int
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase  Phase
	Scores []PlayerScore // In registration order
	Winner string        // Label of the winner, empty while running
	Tick   uint64
}

// Over reports whether the match has finished.
func (s GameState) Over() bool {
	return s.Phase == PhaseWon
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State     GameState
	Collected []string // IDs of characters that scored this tick
	Fallback  bool     // Item placement gave up and used a best-effort spot
}
