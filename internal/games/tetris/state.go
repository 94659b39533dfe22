package tetris

import (
	"slices"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
)

// Rules are the fixed parameters of a game.
type Rules struct {
	Width, Height int
	PointsPerLine int
	Kicks         []int // Horizontal offsets tried in order when rotating
}

// RulesFrom converts settings into game rules.
func RulesFrom(cfg config.TetrisConfig) Rules {
	return Rules{
		Width:         cfg.Grid.Width,
		Height:        cfg.Grid.Height,
		PointsPerLine: cfg.PointsPerLine,
		Kicks:         slices.Clone(cfg.Kicks),
	}
}

// Grid holds locked cells, indexed [row][col] with row 0 at the top.
type Grid [][]Kind

// NewGrid returns an empty grid.
func NewGrid(w, h int) Grid {
	g := make(Grid, h)
	for y := range g {
		g[y] = make([]Kind, w)
	}
	return g
}

// Filled counts occupied cells.
func (g Grid) Filled() int {
	n := 0
	for _, row := range g {
		for _, k := range row {
			if k != Empty {
				n++
			}
		}
	}
	return n
}

// State is one game.
type State struct {
	Grid  Grid
	Piece Piece
	Next  Kind
	Score int
	Lines int
	Phase core.Phase
	RNG   core.RNG
}

// NewState returns a running game with an empty grid and a piece in play.
func NewState(r Rules, rng core.RNG) State {
	s := State{
		Grid:  NewGrid(r.Width, r.Height),
		Phase: core.PhaseRunning,
		RNG:   rng,
	}
	s.Next = s.randomKind()
	return spawn(s, r)
}

func (s *State) randomKind() Kind {
	return Kinds[s.RNG.IntN(len(Kinds))]
}

// SpawnPiece places a piece of the given kind at the top center.
func SpawnPiece(k Kind, r Rules) Piece {
	shape := ShapeOf(k)
	return Piece{Kind: k, Shape: shape, X: r.Width/2 - len(shape[0])/2, Y: 0}
}

// spawn brings the next piece into play. A piece that collides where it
// spawns ends the game.
func spawn(s State, r Rules) State {
	s.Piece = SpawnPiece(s.Next, r)
	s.Next = s.randomKind()
	if Collides(s.Grid, s.Piece, r) {
		s.Phase = core.PhaseOver
	}
	return s
}

// Collides reports whether any cell of the piece is outside the grid or on
// a locked cell.
func Collides(g Grid, p Piece, r Rules) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= r.Width || c.Y < 0 || c.Y >= r.Height {
			return true
		}
		if g[c.Y][c.X] != Empty {
			return true
		}
	}
	return false
}

// Move shifts the piece sideways by dx if it fits.
func Move(s State, r Rules, dx int) State {
	if s.Phase != core.PhaseRunning {
		return s
	}
	p := s.Piece
	p.X += dx
	if !Collides(s.Grid, p, r) {
		s.Piece = p
	}
	return s
}

// Rotate turns the piece clockwise, trying each kick offset in order and
// keeping the first placement that fits.
func Rotate(s State, r Rules) State {
	if s.Phase != core.PhaseRunning {
		return s
	}
	p := s.Piece
	p.Shape = p.Shape.Rotate()
	for _, dx := range r.Kicks {
		cand := p
		cand.X += dx
		if !Collides(s.Grid, cand, r) {
			s.Piece = cand
			return s
		}
	}
	return s
}

// Fall moves the piece down one row. If it cannot move it locks in place.
// Gravity and soft drop both use this.
func Fall(s State, r Rules) State {
	if s.Phase != core.PhaseRunning {
		return s
	}
	p := s.Piece
	p.Y++
	if !Collides(s.Grid, p, r) {
		s.Piece = p
		return s
	}
	return lock(s, r)
}

// HardDrop drops the piece as far as it goes and locks it.
func HardDrop(s State, r Rules) State {
	if s.Phase != core.PhaseRunning {
		return s
	}
	s.Piece = Landing(s, r)
	return lock(s, r)
}

// Landing returns where the piece would come to rest if dropped.
func Landing(s State, r Rules) Piece {
	p := s.Piece
	for {
		next := p
		next.Y++
		if Collides(s.Grid, next, r) {
			return p
		}
		p = next
	}
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

// lock merges the piece into the grid, clears full rows, scores them and
// spawns the next piece.
func lock(s State, r Rules) State {
	grid := make(Grid, len(s.Grid))
	for y := range s.Grid {
		grid[y] = slices.Clone(s.Grid[y])
	}
	for _, c := range s.Piece.Cells() {
		grid[c.Y][c.X] = s.Piece.Kind
	}

	grid, cleared := ClearRows(grid)
	s.Grid = grid
	s.Lines += cleared
	s.Score += cleared * r.PointsPerLine
	return spawn(s, r)
}

// ClearRows removes every full row. Rows above move down and empty rows are
// added at the top. It returns the new grid and how many rows were removed.
func ClearRows(g Grid) (Grid, int) {
	if len(g) == 0 {
		return g, 0
	}
	w := len(g[0])
	kept := make(Grid, 0, len(g))
	for _, row := range g {
		if !slices.Contains(row, Empty) {
			continue
		}
		kept = append(kept, row)
	}
	cleared := len(g) - len(kept)
	out := make(Grid, 0, len(g))
	for i := 0; i < cleared; i++ {
		out = append(out, make([]Kind, w))
	}
	return append(out, kept...), cleared
}
