package core

import "time"

// Difficulty presets understood by every game.
const (
	DifficultyEasy   = "easy"
	DifficultyNormal = "normal"
	DifficultyHard   = "hard"
)

// RuntimeConfig contains configuration passed to games at Reset.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Platform ticks per second (default 60)
	Seed       int64  // RNG seed for deterministic gameplay
	Difficulty string // easy, normal or hard
	ConfigDir  string // Extra directory searched first for <game>.yaml
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0, // 0 means use current time in platform layer
		Difficulty: DifficultyNormal,
	}
}

// TicksFor converts a wall-clock cadence into a number of platform ticks,
// rounding to the nearest tick. The result is never below one.
func TicksFor(d time.Duration, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	n := (int64(d)*int64(tickRate) + int64(time.Second)/2) / int64(time.Second)
	if n < 1 {
		return 1
	}
	return int(n)
}

// Phase is the lifecycle position of a game.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhasePaused
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score   int    // Current score
	Phase   Phase  // Lifecycle position
	Outcome string // Short result text once the game is over
}

// GameOver reports whether the game has reached a terminal state.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseOver
}

// Paused reports whether the simulation is suspended.
func (s GameState) Paused() bool {
	return s.Phase == PhasePaused
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
