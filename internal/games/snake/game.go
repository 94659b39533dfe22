// Package snake is the classic grid snake: eat, grow, don't hit anything.
package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
)

// Each grid cell is drawn two characters wide so it looks square.
const cellW = 2

// Game implements registry.Game for Snake.
type Game struct {
	state      State
	cfg        config.SnakeConfig
	override   *config.SnakeConfig
	moveEvery  int // Ticks per move
	moveTicker int
	tick       uint64

	screenW int
	screenH int
}

func init() {
	registry.Register(config.GameSnake, func() registry.Game {
		return New()
	})
}

// New creates a game that reads its settings on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with fixed settings.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	return &Game{override: &cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return config.GameSnake
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Description returns a one-line summary for the menu.
func (g *Game) Description() string {
	return "Eat, grow, and stay off the walls and your own tail."
}

// Controls returns a control summary for the menu.
func (g *Game) Controls() string {
	return "arrows/WASD steer, enter start, p pause"
}

// Reset starts a new game. The high score of earlier games is kept.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg := config.DefaultSnakeConfig()
	if g.override != nil {
		cfg = *g.override
	} else if loaded, err := config.LoadSnake(rc.ConfigDir); err == nil {
		cfg = loaded
	}
	// A broken settings file or an unknown preset plays with the defaults.
	// cmd/arcade validates both and warns before a game is mounted.
	preset, _ := config.ParseDifficulty(rc.Difficulty)
	config.ApplySnakePreset(&cfg, preset)
	g.cfg = cfg

	g.moveEvery = core.TicksFor(time.Duration(cfg.MoveEveryMs)*time.Millisecond, rc.TickRate)
	g.moveTicker = 0
	g.tick = 0
	g.state = NewState(cfg, core.NewRNG(rc.Seed), g.state.HighScore)
	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Resize records the drawable area.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Snapshot returns the current game state for determinism checks.
func (g *Game) Snapshot() State {
	return g.state
}

// MoveEvery returns how many ticks pass between moves.
func (g *Game) MoveEvery() int {
	return g.moveEvery
}

// Step applies steering and pause input, then moves the snake when its
// move timer runs out.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.state = TogglePause(g.state)
	}

	if d, ok := direction(in); ok {
		g.state = Turn(g.state, d)
		g.state = Start(g.state)
	}
	if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
		g.state = Start(g.state)
	}

	if in.Tick && g.state.Phase == core.PhaseRunning {
		g.tick++
		g.moveTicker++
		if g.moveTicker >= g.moveEvery {
			g.moveTicker = 0
			g.state = Advance(g.state, g.cfg.PointsPerFood)
		}
	}

	return core.StepResult{State: g.State()}
}

func direction(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{Score: g.state.Score, Phase: g.state.Phase}
	if g.state.Phase == core.PhaseOver {
		st.Outcome = fmt.Sprintf("Score %d", g.state.Score)
		if g.state.NewRecord {
			st.Outcome = "New high score!"
		}
	}
	return st
}

// fieldRect is the bordered playfield. The HUD takes row 0 and the top
// border doubles as its separator.
func (g *Game) fieldRect() core.Rect {
	w := g.state.Width*cellW + 2
	h := g.state.Height + 2
	return core.NewRect((g.screenW-w)/2, 1, w, h)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Snake │ Score: %d  High: %d  Length: %d", g.state.Score, g.state.HighScore, len(g.state.Body))
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)

	f := g.fieldRect()
	if f.X < 0 || f.Right() > dst.Width() || f.Bottom() > dst.Height() {
		dst.DrawMessageBox(core.ColorYellow, "Window too small",
			fmt.Sprintf("Need %dx%d", f.W, f.Bottom()))
		return
	}

	dst.DrawBoxColored(f, core.ColorGray)

	if g.state.Food.X >= 0 {
		g.renderCell(dst, f, g.state.Food, core.ColorBrightRed)
	}
	for i := len(g.state.Body) - 1; i >= 0; i-- {
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		g.renderCell(dst, f, g.state.Body[i], color)
	}

	switch g.state.Phase {
	case core.PhaseNotStarted:
		dst.DrawMessageBox(core.ColorBrightGreen, "SNAKE", "", "Press Enter or an arrow key to start")
	case core.PhasePaused:
		dst.DrawMessageBox(core.ColorYellow, "Paused", "Press P to continue")
	case core.PhaseOver:
		lines := []string{"Game Over", fmt.Sprintf("Score: %d", g.state.Score)}
		if g.state.NewRecord {
			lines = append(lines, "New high score!")
		}
		lines = append(lines, "", "Press R to restart")
		dst.DrawMessageBox(core.ColorBrightRed, lines...)
	}
}

func (g *Game) renderCell(dst *core.Screen, f core.Rect, p core.Point, c core.Color) {
	x := f.X + 1 + p.X*cellW
	y := f.Y + 1 + p.Y
	for i := 0; i < cellW; i++ {
		dst.SetColored(x+i, y, '█', c)
	}
}
