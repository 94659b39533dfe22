// Package config loads application settings and per-game tuning files.
// Game settings are YAML with embedded defaults; application settings come
// from a YAML file, a .env file and ARCADE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Game IDs with a settings file.
const (
	GameTicTacToe = "tictactoe"
	GameMemory    = "memory"
	GameSnake     = "snake"
	GamePong      = "pong"
	GameInvaders  = "invaders"
	GameTetris    = "tetris"
)

// ErrUnknownGame is returned when asking for the settings of a game that
// has none.
var ErrUnknownGame = errors.New("config: unknown game")

// TicTacToeConfig contains all configuration for Tic-Tac-Toe.
type TicTacToeConfig struct {
	Board TicTacToeBoard `yaml:"board"`
}

// TicTacToeBoard controls how the board is drawn.
type TicTacToeBoard struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// Validate checks the configuration for values the game cannot use.
func (c TicTacToeConfig) Validate() error {
	if c.Board.CellWidth < 3 || c.Board.CellHeight < 1 {
		return fmt.Errorf("config: tictactoe cells must be at least 3x1, got %dx%d",
			c.Board.CellWidth, c.Board.CellHeight)
	}
	return nil
}

// MemoryConfig contains all configuration for the Memory game.
type MemoryConfig struct {
	Symbols       []string `yaml:"symbols"`         // One single-cell glyph per pair
	RevealDelayMs int      `yaml:"reveal_delay_ms"` // How long a mismatched pair stays face up
}

// MemoryPairs is the number of pairs on the table.
const MemoryPairs = 6

// Validate checks the configuration for values the game cannot use.
func (c MemoryConfig) Validate() error {
	if len(c.Symbols) != MemoryPairs {
		return fmt.Errorf("config: memory needs exactly %d symbols, got %d", MemoryPairs, len(c.Symbols))
	}
	seen := make(map[string]bool, len(c.Symbols))
	for _, s := range c.Symbols {
		if utf8.RuneCountInString(s) != 1 || seen[s] {
			return fmt.Errorf("config: memory symbols must be unique single characters, got %q", s)
		}
		seen[s] = true
	}
	if c.RevealDelayMs <= 0 {
		return fmt.Errorf("config: memory reveal_delay_ms must be positive, got %d", c.RevealDelayMs)
	}
	return nil
}

// SnakeConfig contains all configuration for Snake.
type SnakeConfig struct {
	Grid          SnakeGrid  `yaml:"grid"`
	Start         SnakeStart `yaml:"start"`
	Food          SnakeFood  `yaml:"food"`
	MoveEveryMs   int        `yaml:"move_every_ms"`
	PointsPerFood int        `yaml:"points_per_food"`
}

// SnakeGrid is the size of the playfield in cells.
type SnakeGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeStart places the head and sets the initial body length.
type SnakeStart struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Length int `yaml:"length"`
}

// SnakeFood is the position of the first food item.
type SnakeFood struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Validate checks the configuration for values the game cannot use.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width < 5 || c.Grid.Height < 5 {
		return fmt.Errorf("config: snake grid must be at least 5x5, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Start.Length < 1 || c.Start.Length > c.Start.X+1 {
		return fmt.Errorf("config: snake start length %d does not fit left of x=%d", c.Start.Length, c.Start.X)
	}
	if c.Start.X >= c.Grid.Width || c.Start.Y < 0 || c.Start.Y >= c.Grid.Height {
		return fmt.Errorf("config: snake start (%d,%d) outside grid", c.Start.X, c.Start.Y)
	}
	if c.MoveEveryMs <= 0 || c.PointsPerFood <= 0 {
		return errors.New("config: snake move_every_ms and points_per_food must be positive")
	}
	return nil
}

// PongConfig contains all configuration for Pong. Sizes are in playfield
// units; the renderer scales them to the terminal.
type PongConfig struct {
	Field    PongField  `yaml:"field"`
	Paddle   PongPaddle `yaml:"paddle"`
	Ball     PongBall   `yaml:"ball"`
	CPU      PongCPU    `yaml:"cpu"`
	WinScore int        `yaml:"win_score"`
}

// PongField is the playfield size.
type PongField struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PongPaddle defines paddle geometry and player movement.
type PongPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Step   float64 `yaml:"step"` // Distance per key press
}

// PongBall defines ball geometry and speed.
type PongBall struct {
	Size         float64 `yaml:"size"`
	Speed        float64 `yaml:"speed"`          // Initial speed on each axis
	SpeedUp      float64 `yaml:"speed_up"`       // Velocity multiplier on paddle contact
	ServeDelayMs int     `yaml:"serve_delay_ms"` // Pause before a serve moves
}

// PongCPU tunes the computer opponent.
type PongCPU struct {
	Speed    float64 `yaml:"speed"`
	DeadZone float64 `yaml:"dead_zone"`
}

// Validate checks the configuration for values the game cannot use.
func (c PongConfig) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return errors.New("config: pong field must have positive size")
	}
	if c.Paddle.Height >= c.Field.Height || c.Paddle.Width <= 0 {
		return fmt.Errorf("config: pong paddle %vx%v does not fit the field", c.Paddle.Width, c.Paddle.Height)
	}
	if c.Ball.Size <= 0 || c.Ball.Speed <= 0 || c.Ball.SpeedUp < 1 {
		return errors.New("config: pong ball needs positive size and speed and speed_up >= 1")
	}
	if c.WinScore < 1 {
		return fmt.Errorf("config: pong win_score must be at least 1, got %d", c.WinScore)
	}
	return nil
}

// InvadersConfig contains all configuration for Space Invaders.
type InvadersConfig struct {
	Field      InvadersField      `yaml:"field"`
	Aliens     InvadersAliens     `yaml:"aliens"`
	Ship       InvadersShip       `yaml:"ship"`
	Projectile InvadersProjectile `yaml:"projectile"`
	Points     int                `yaml:"points_per_alien"`
}

// InvadersField is the playfield size.
type InvadersField struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// InvadersAliens describes the formation and how it grows per level.
type InvadersAliens struct {
	Size        float64 `yaml:"size"`
	Gap         float64 `yaml:"gap"`
	OriginX     float64 `yaml:"origin_x"`
	OriginY     float64 `yaml:"origin_y"`
	Rows        int     `yaml:"rows"`
	Cols        int     `yaml:"cols"`
	MaxRows     int     `yaml:"max_rows"`
	MaxCols     int     `yaml:"max_cols"`
	Speed       float64 `yaml:"speed"`        // Horizontal units per tick on level 1
	SpeedFactor float64 `yaml:"speed_factor"` // Multiplier per level
	MaxSpeed    float64 `yaml:"max_speed"`
	Drop        float64 `yaml:"drop"`
}

// InvadersShip defines the player ship.
type InvadersShip struct {
	Size float64 `yaml:"size"`
	Step float64 `yaml:"step"` // Distance per key press
}

// InvadersProjectile defines player shots.
type InvadersProjectile struct {
	Size       float64 `yaml:"size"`
	Speed      float64 `yaml:"speed"`
	CooldownMs int     `yaml:"cooldown_ms"`
}

// Validate checks the configuration for values the game cannot use.
func (c InvadersConfig) Validate() error {
	a := c.Aliens
	if a.Rows < 1 || a.Cols < 1 || a.MaxRows < a.Rows || a.MaxCols < a.Cols {
		return fmt.Errorf("config: invaders formation %dx%d (max %dx%d) is invalid", a.Rows, a.Cols, a.MaxRows, a.MaxCols)
	}
	width := a.OriginX + float64(a.MaxCols)*(a.Size+a.Gap)
	if width > c.Field.Width {
		return fmt.Errorf("config: invaders formation %.0f wide does not fit field %.0f", width, c.Field.Width)
	}
	if a.Speed <= 0 || a.SpeedFactor < 1 || a.MaxSpeed < a.Speed {
		return errors.New("config: invaders speed must be positive, speed_factor >= 1 and max_speed >= speed")
	}
	if c.Ship.Size <= 0 || c.Projectile.Speed <= 0 || c.Points <= 0 {
		return errors.New("config: invaders ship size, projectile speed and points must be positive")
	}
	return nil
}

// TetrisConfig contains all configuration for Tetris.
type TetrisConfig struct {
	Grid          TetrisGrid `yaml:"grid"`
	GravityMs     int        `yaml:"gravity_ms"`
	PointsPerLine int        `yaml:"points_per_line"`
	Kicks         []int      `yaml:"kicks"` // Horizontal offsets tried when rotating
}

// TetrisGrid is the well size in cells.
type TetrisGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Validate checks the configuration for values the game cannot use.
func (c TetrisConfig) Validate() error {
	if c.Grid.Width < 4 || c.Grid.Height < 4 {
		return fmt.Errorf("config: tetris grid must be at least 4x4, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.GravityMs <= 0 || c.PointsPerLine <= 0 {
		return errors.New("config: tetris gravity_ms and points_per_line must be positive")
	}
	if len(c.Kicks) == 0 || c.Kicks[0] != 0 {
		return errors.New("config: tetris kicks must start with 0")
	}
	return nil
}
