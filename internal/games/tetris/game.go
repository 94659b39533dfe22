// Package tetris is the falling-block puzzle: complete rows to clear them.
package tetris

import (
	"fmt"
	"time"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
)

// Each grid cell is drawn two characters wide so it looks square.
const cellW = 2

// Game implements registry.Game for Tetris.
type Game struct {
	state        State
	rules        Rules
	override     *config.TetrisConfig
	gravityEvery int // Ticks per row of gravity
	gravityTick  int
	tick         uint64

	screenW int
	screenH int
}

func init() {
	registry.Register(config.GameTetris, func() registry.Game {
		return New()
	})
}

// New creates a game that reads its settings on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with fixed settings.
func NewWithConfig(cfg config.TetrisConfig) *Game {
	return &Game{override: &cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return config.GameTetris
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Description returns a one-line summary for the menu.
func (g *Game) Description() string {
	return "Stack falling tetrominoes and clear full rows."
}

// Controls returns a control summary for the menu.
func (g *Game) Controls() string {
	return "left/right move, up rotate, down soft drop, space hard drop, p pause"
}

// Reset starts a new game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg := config.DefaultTetrisConfig()
	if g.override != nil {
		cfg = *g.override
	} else if loaded, err := config.LoadTetris(rc.ConfigDir); err == nil {
		cfg = loaded
	}
	preset, _ := config.ParseDifficulty(rc.Difficulty)
	config.ApplyTetrisPreset(&cfg, preset)

	g.rules = RulesFrom(cfg)
	g.gravityEvery = core.TicksFor(time.Duration(cfg.GravityMs)*time.Millisecond, rc.TickRate)
	g.gravityTick = 0
	g.tick = 0
	g.state = NewState(g.rules, core.NewRNG(rc.Seed))
	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Resize records the drawable area.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() State {
	return g.state
}

// GravityEvery returns how many ticks pass between gravity steps.
func (g *Game) GravityEvery() int {
	return g.gravityEvery
}

// Step applies piece input, then lets gravity pull the piece when its timer
// runs out.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.state = TogglePause(g.state)
	}

	if in.Has(core.ActionLeft) {
		g.state = Move(g.state, g.rules, -1)
	}
	if in.Has(core.ActionRight) {
		g.state = Move(g.state, g.rules, 1)
	}
	if in.Has(core.ActionUp) {
		g.state = Rotate(g.state, g.rules)
	}
	if in.Has(core.ActionDown) {
		g.state = Fall(g.state, g.rules)
	}
	if in.Has(core.ActionFire) {
		g.state = HardDrop(g.state, g.rules)
		g.gravityTick = 0
	}

	if in.Tick && g.state.Phase == core.PhaseRunning {
		g.tick++
		g.gravityTick++
		if g.gravityTick >= g.gravityEvery {
			g.gravityTick = 0
			g.state = Fall(g.state, g.rules)
		}
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{Score: g.state.Score, Phase: g.state.Phase}
	if g.state.Phase == core.PhaseOver {
		st.Outcome = fmt.Sprintf("%d lines", g.state.Lines)
	}
	return st
}

// wellRect is the bordered grid, placed left of center to leave room for
// the side panel.
func (g *Game) wellRect() core.Rect {
	w := g.rules.Width*cellW + 2
	h := g.rules.Height + 2
	return core.NewRect((g.screenW-w)/2-8, 1, w, h)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Tetris │ Score: %d  Lines: %d", g.state.Score, g.state.Lines)
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)

	well := g.wellRect()
	if well.X < 0 || well.Right()+14 > dst.Width() || well.Bottom() > dst.Height() {
		dst.DrawMessageBox(core.ColorYellow, "Window too small",
			fmt.Sprintf("Need %dx%d", well.W+30, well.Bottom()))
		return
	}

	dst.DrawBoxColored(well, core.ColorGray)
	for y, row := range g.state.Grid {
		for x, k := range row {
			if k != Empty {
				g.drawCell(dst, well.X+1, well.Y+1, x, y, '█', k.Color())
			}
		}
	}

	if g.state.Phase != core.PhaseOver {
		for _, c := range Landing(g.state, g.rules).Cells() {
			g.drawCell(dst, well.X+1, well.Y+1, c.X, c.Y, '░', core.ColorGray)
		}
		for _, c := range g.state.Piece.Cells() {
			g.drawCell(dst, well.X+1, well.Y+1, c.X, c.Y, '█', g.state.Piece.Kind.Color())
		}
	}

	// Next piece preview
	panel := core.NewRect(well.Right()+2, well.Y, 12, 6)
	dst.DrawBoxColored(panel, core.ColorGray)
	dst.DrawTextColored(panel.X+2, panel.Y, " Next ", core.ColorWhite)
	next := ShapeOf(g.state.Next)
	for _, c := range next.Cells(0, 0) {
		g.drawCell(dst, panel.X+2, panel.Y+1, c.X, c.Y, '█', g.state.Next.Color())
	}

	switch g.state.Phase {
	case core.PhasePaused:
		dst.DrawMessageBox(core.ColorYellow, "PAUSED", "Press P to resume")
	case core.PhaseOver:
		dst.DrawMessageBox(core.ColorBrightRed, "GAME OVER",
			fmt.Sprintf("Score: %d  Lines: %d", g.state.Score, g.state.Lines),
			"", "Press R to restart")
	}
}

func (g *Game) drawCell(dst *core.Screen, ox, oy, x, y int, r rune, c core.Color) {
	for i := 0; i < cellW; i++ {
		dst.SetColored(ox+x*cellW+i, oy+y, r, c)
	}
}
