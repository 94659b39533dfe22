// Package session tracks one mounted game: who is playing it, how long it
// has been running and which tick stream is allowed to drive it.
package session

import "github.com/google/uuid"

// ID uniquely identifies one mount of a game.
type ID string

// NewID returns a fresh random session ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// Short returns the first eight characters, enough for logs and footers.
func (id ID) Short() string {
	if len(id) <= 8 {
		return string(id)
	}
	return string(id[:8])
}

// Mode defines who is on the other side of the board.
type Mode int

const (
	// ModeSolo is a single player against the game itself.
	ModeSolo Mode = iota

	// ModeVsCPU pits the player against a computer opponent.
	ModeVsCPU

	// ModeHotseat is two people sharing one keyboard.
	ModeHotseat
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeSolo:
		return "Solo"
	case ModeVsCPU:
		return "vs CPU"
	case ModeHotseat:
		return "Hotseat"
	default:
		return "Unknown"
	}
}

// ModeFor returns the play mode a game runs in.
func ModeFor(gameID string) Mode {
	switch gameID {
	case "pong":
		return ModeVsCPU
	case "tictactoe":
		return ModeHotseat
	default:
		return ModeSolo
	}
}
