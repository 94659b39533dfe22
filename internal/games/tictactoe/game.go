// Package tictactoe is a two-player hotseat tic-tac-toe.
package tictactoe

import (
	"fmt"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
)

const hudHeight = 2

// Game implements registry.Game for tic-tac-toe.
type Game struct {
	state    State
	cursor   int
	tally    Tally
	cfg      config.TicTacToeConfig
	override *config.TicTacToeConfig

	screenW int
	screenH int
}

func init() {
	registry.Register(config.GameTicTacToe, func() registry.Game {
		return New()
	})
}

// New creates a game that reads its settings on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with fixed settings.
func NewWithConfig(cfg config.TicTacToeConfig) *Game {
	return &Game{override: &cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return config.GameTicTacToe
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tic-Tac-Toe"
}

// Description returns a one-line summary for the menu.
func (g *Game) Description() string {
	return "Two players, one keyboard. Three in a row wins."
}

// Controls returns a control summary for the menu.
func (g *Game) Controls() string {
	return "arrows move, enter/space place, 1-9 or click a cell"
}

// Reset clears the board. The win tally survives resets.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.override != nil {
		g.cfg = *g.override
	} else {
		cfg, err := config.LoadTicTacToe(rc.ConfigDir)
		if err != nil {
			cfg = config.DefaultTicTacToeConfig()
		}
		g.cfg = cfg
	}

	g.state = NewState()
	g.cursor = 4
	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Resize records the drawable area.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Snapshot returns the current round.
func (g *Game) Snapshot() State {
	return g.state
}

// Tally returns the finished rounds so far.
func (g *Game) Tally() Tally {
	return g.tally
}

// Step handles cursor movement and placement. Tic-tac-toe has no clock,
// so tick frames change nothing.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state.Over() {
		return core.StepResult{State: g.State()}
	}

	row, col := g.cursor/3, g.cursor%3
	switch {
	case in.Has(core.ActionUp):
		row = (row + 2) % 3
	case in.Has(core.ActionDown):
		row = (row + 1) % 3
	case in.Has(core.ActionLeft):
		col = (col + 2) % 3
	case in.Has(core.ActionRight):
		col = (col + 1) % 3
	}
	g.cursor = row*3 + col

	target := -1
	switch {
	case in.Digit() > 0:
		target = in.Digit() - 1
	case in.Has(core.ActionConfirm) || in.Has(core.ActionFire):
		target = g.cursor
	}
	if p, ok := in.Click(); ok {
		target = g.cellAt(p)
	}

	if target >= 0 {
		g.place(target)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) place(cell int) {
	next := Place(g.state, cell)
	if next == g.state {
		return
	}
	g.state = next
	g.cursor = cell
	if g.state.Over() {
		g.tally = g.tally.Record(g.state.Outcome)
	}
}

// State returns the current game state. Rounds have no score.
func (g *Game) State() core.GameState {
	if g.state.Over() {
		return core.GameState{Phase: core.PhaseOver, Outcome: g.state.Outcome.String()}
	}
	return core.GameState{Phase: core.PhaseRunning}
}

// boardRect returns the outer frame of the board, centered below the HUD.
func (g *Game) boardRect() core.Rect {
	w := 3*g.cfg.Board.CellWidth + 4
	h := 3*g.cfg.Board.CellHeight + 4
	x := (g.screenW - w) / 2
	y := hudHeight + (g.screenH-hudHeight-2-h)/2
	return core.NewRect(x, max(y, hudHeight), w, h)
}

// cellRect returns the interior of one cell.
func (g *Game) cellRect(cell int) core.Rect {
	b := g.boardRect()
	cw, ch := g.cfg.Board.CellWidth, g.cfg.Board.CellHeight
	col, row := cell%3, cell/3
	return core.NewRect(b.X+1+col*(cw+1), b.Y+1+row*(ch+1), cw, ch)
}

// cellAt maps a screen position to a cell index, or -1.
func (g *Game) cellAt(p core.Point) int {
	for i := 0; i < BoardSize; i++ {
		if g.cellRect(i).Contains(p.X, p.Y) {
			return i
		}
	}
	return -1
}

// Render draws the board, marks, cursor and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	status := fmt.Sprintf(" Tic-Tac-Toe │ Turn: %s  Moves: %d │ X %d  O %d  Draw %d",
		g.state.Turn, g.state.Moves, g.tally.X, g.tally.O, g.tally.Draws)
	dst.DrawHeader(status, core.ColorWhite)

	b := g.boardRect()
	if b.W > dst.Width() || b.Bottom() > dst.Height() {
		dst.DrawMessageBox(core.ColorYellow, "Window too small", "Resize to continue")
		return
	}

	g.renderGrid(dst, b)

	for i := 0; i < BoardSize; i++ {
		g.renderCell(dst, i)
	}

	if g.state.Over() {
		msg := g.state.Outcome.String() + "!"
		dst.DrawTextCenteredColored(b.Bottom(), msg, core.ColorBrightYellow)
		dst.DrawTextCenteredColored(b.Bottom()+1, "Press R for another round", core.ColorGray)
	}
}

func (g *Game) renderGrid(dst *core.Screen, b core.Rect) {
	dst.DrawBoxColored(b, core.ColorGray)
	cw, ch := g.cfg.Board.CellWidth, g.cfg.Board.CellHeight
	for i := 1; i < 3; i++ {
		dst.DrawHLineColored(b.X+1, b.Y+i*(ch+1), b.W-2, '─', core.ColorGray)
	}
	for i := 1; i < 3; i++ {
		x := b.X + i*(cw+1)
		for y := b.Y + 1; y < b.Bottom()-1; y++ {
			r := '│'
			if (y-b.Y)%(ch+1) == 0 {
				r = '┼'
			}
			dst.SetColored(x, y, r, core.ColorGray)
		}
	}
}

func (g *Game) renderCell(dst *core.Screen, cell int) {
	r := g.cellRect(cell)
	cx, cy := r.Center()

	mark := g.state.Board[cell]
	switch {
	case mark != Empty:
		color := core.ColorBrightRed
		if mark == O {
			color = core.ColorBrightBlue
		}
		if g.state.InLine(cell) {
			color = core.ColorBrightYellow
		}
		dst.SetColored(cx, cy, rune(mark.String()[0]), color)
	default:
		dst.SetColored(cx, cy, rune('1'+cell), core.ColorGray)
	}

	if cell == g.cursor && !g.state.Over() {
		dst.SetColored(cx-2, cy, '[', core.ColorCyan)
		dst.SetColored(cx+2, cy, ']', core.ColorCyan)
	}
}
