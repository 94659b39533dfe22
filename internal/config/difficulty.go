package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. The empty string means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return DifficultyNormal, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Factor returns how much faster than normal a preset plays.
func (p DifficultyPreset) Factor() float64 {
	switch p {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// scaleMs shortens an interval for faster presets, never below 1ms.
func scaleMs(ms int, p DifficultyPreset) int {
	return max(1, int(math.Round(float64(ms)/p.Factor())))
}

// ApplyMemoryPreset shortens or lengthens how long a mismatch stays visible.
func ApplyMemoryPreset(cfg *MemoryConfig, preset DifficultyPreset) {
	cfg.RevealDelayMs = scaleMs(cfg.RevealDelayMs, preset)
}

// ApplySnakePreset changes how often the snake moves.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	cfg.MoveEveryMs = scaleMs(cfg.MoveEveryMs, preset)
}

// ApplyPongPreset changes how quickly the CPU paddle tracks the ball.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	cfg.CPU.Speed *= preset.Factor()
}

// ApplyInvadersPreset changes formation speed on every level.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	cfg.Aliens.Speed *= preset.Factor()
	cfg.Aliens.MaxSpeed *= preset.Factor()
}

// ApplyTetrisPreset changes the gravity interval.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	cfg.GravityMs = scaleMs(cfg.GravityMs, preset)
}
