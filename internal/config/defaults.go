package config

import (
	_ "embed"
	"fmt"
)

//go:embed defaults/tictactoe.yaml
var defaultTicTacToeYAML []byte

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTicTacToeConfig returns the default Tic-Tac-Toe configuration.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{
		Board: TicTacToeBoard{CellWidth: 7, CellHeight: 3},
	}
}

// DefaultMemoryConfig returns the default Memory configuration.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Symbols:       []string{"♠", "♥", "♦", "♣", "★", "●"},
		RevealDelayMs: 1000,
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid:          SnakeGrid{Width: 20, Height: 20},
		Start:         SnakeStart{X: 10, Y: 10, Length: 1},
		Food:          SnakeFood{X: 15, Y: 10},
		MoveEveryMs:   150,
		PointsPerFood: 1,
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field:  PongField{Width: 600, Height: 400},
		Paddle: PongPaddle{Width: 10, Height: 100, Step: 20},
		Ball: PongBall{
			Size:         10,
			Speed:        5,
			SpeedUp:      1.1,
			ServeDelayMs: 500,
		},
		CPU:      PongCPU{Speed: 5, DeadZone: 10},
		WinScore: 5,
	}
}

// DefaultInvadersConfig returns the default Space Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: InvadersField{Width: 800, Height: 600},
		Aliens: InvadersAliens{
			Size:        30,
			Gap:         20,
			OriginX:     100,
			OriginY:     50,
			Rows:        3,
			Cols:        8,
			MaxRows:     6,
			MaxCols:     12,
			Speed:       1,
			SpeedFactor: 1.25,
			MaxSpeed:    4,
			Drop:        20,
		},
		Ship:       InvadersShip{Size: 40, Step: 10},
		Projectile: InvadersProjectile{Size: 5, Speed: 5, CooldownMs: 250},
		Points:     100,
	}
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Grid:          TetrisGrid{Width: 10, Height: 20},
		GravityMs:     1000,
		PointsPerLine: 100,
		Kicks:         []int{0, -1, 1, -2, 2},
	}
}

// DefaultYAML returns the embedded settings file for a game.
func DefaultYAML(gameID string) ([]byte, error) {
	switch gameID {
	case GameTicTacToe:
		return defaultTicTacToeYAML, nil
	case GameMemory:
		return defaultMemoryYAML, nil
	case GameSnake:
		return defaultSnakeYAML, nil
	case GamePong:
		return defaultPongYAML, nil
	case GameInvaders:
		return defaultInvadersYAML, nil
	case GameTetris:
		return defaultTetrisYAML, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, gameID)
	}
}
