package snake

import (
	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Vector returns the one-cell step for d.
func (d Direction) Vector() core.Point {
	switch d {
	case DirUp:
		return core.Point{Y: -1}
	case DirDown:
		return core.Point{Y: 1}
	case DirLeft:
		return core.Point{X: -1}
	default:
		return core.Point{X: 1}
	}
}

// Opposite reports whether d and o point in opposite directions.
func (d Direction) Opposite(o Direction) bool {
	return (d+2)%4 == o
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
		return "unknown"
	}
}

// State is one game of snake. Every function here returns a new State and
// leaves its argument untouched, including the Body slice.
type State struct {
	Body      []core.Point // Head at index 0
	Dir       Direction    // Direction of the last move
	NextDir   Direction    // Direction of the next move
	Food      core.Point   // (-1,-1) when the board is full
	Width     int
	Height    int
	Score     int
	HighScore int
	NewRecord bool
	Phase     core.Phase
	RNG       core.RNG
}

// NewState places the snake heading right from the configured start with
// the first food at its configured cell. highScore carries over from
// earlier games.
func NewState(cfg config.SnakeConfig, rng core.RNG, highScore int) State {
	s := State{
		Width:     cfg.Grid.Width,
		Height:    cfg.Grid.Height,
		Dir:       DirRight,
		NextDir:   DirRight,
		HighScore: highScore,
		Phase:     core.PhaseNotStarted,
		RNG:       rng,
	}
	s.Body = make([]core.Point, cfg.Start.Length)
	for i := range s.Body {
		s.Body[i] = core.Point{X: cfg.Start.X - i, Y: cfg.Start.Y}
	}

	food := core.Point{X: cfg.Food.X, Y: cfg.Food.Y}
	if food.In(s.Width, s.Height) && !s.occupied(food) {
		s.Food = food
	} else {
		s.Food = s.placeFood()
	}
	return s
}

// Head returns the head position.
func (s State) Head() core.Point {
	return s.Body[0]
}

func (s State) occupied(p core.Point) bool {
	for _, seg := range s.Body {
		if seg == p {
			return true
		}
	}
	return false
}

// placeFood picks a random free cell. It advances s.RNG, so callers must
// pass a pointer to the state copy they are building.
func (s *State) placeFood() core.Point {
	free := make([]core.Point, 0, s.Width*s.Height-len(s.Body))
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			p := core.Point{X: x, Y: y}
			if !s.occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return core.Point{X: -1, Y: -1}
	}
	return free[s.RNG.IntN(len(free))]
}

// Start begins a game that has not started yet.
func Start(s State) State {
	if s.Phase == core.PhaseNotStarted {
		s.Phase = core.PhaseRunning
	}
	return s
}

// TogglePause pauses a running game or resumes a paused one.
func TogglePause(s State) State {
	switch s.Phase {
	case core.PhaseRunning:
		s.Phase = core.PhasePaused
	case core.PhasePaused:
		s.Phase = core.PhaseRunning
	}
	return s
}

// Turn requests a new direction for the next move. A reversal of the last
// move is ignored, so two quick turns cannot fold the snake onto itself.
func Turn(s State, d Direction) State {
	if s.Phase == core.PhaseOver || d.Opposite(s.Dir) {
		return s
	}
	s.NextDir = d
	return s
}

// Advance moves the snake one cell. Leaving the grid or running into any
// body segment ends the game; eating food grows the snake by one segment
// and scores points.
func Advance(s State, points int) State {
	if s.Phase != core.PhaseRunning {
		return s
	}

	s.Dir = s.NextDir
	head := s.Head().Add(s.Dir.Vector())

	if !head.In(s.Width, s.Height) || s.occupied(head) {
		return gameOver(s)
	}

	body := make([]core.Point, len(s.Body)+1)
	body[0] = head
	copy(body[1:], s.Body)

	if head != s.Food {
		s.Body = body[:len(body)-1]
		return s
	}

	s.Body = body
	s.Score += points
	s.Food = s.placeFood()
	if s.Food.X < 0 {
		return gameOver(s)
	}
	return s
}

func gameOver(s State) State {
	s.Phase = core.PhaseOver
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		s.NewRecord = true
	}
	return s
}
