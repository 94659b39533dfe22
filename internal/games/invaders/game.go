// Package invaders is a Space Invaders clone: shoot the marching formation
// before it reaches the ship.
package invaders

import (
	"fmt"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
)

const (
	ShipChar  = '▲'
	AlienChar = '▓'
	ShotChar  = '│'
)

// Row colors, top row first.
var alienColors = []core.Color{
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorBrightGreen,
	core.ColorBrightYellow,
	core.ColorOrange,
	core.ColorBrightRed,
}

// Game implements registry.Game for Space Invaders.
type Game struct {
	state    State
	rules    Rules
	override *config.InvadersConfig
	tick     uint64

	screenW int
	screenH int
}

func init() {
	registry.Register(config.GameInvaders, func() registry.Game {
		return New()
	})
}

// New creates a game that reads its settings on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with fixed settings.
func NewWithConfig(cfg config.InvadersConfig) *Game {
	return &Game{override: &cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return config.GameInvaders
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Description returns a one-line summary for the menu.
func (g *Game) Description() string {
	return "Clear wave after wave before the aliens land."
}

// Controls returns a control summary for the menu.
func (g *Game) Controls() string {
	return "left/right move, space fire, p pause"
}

// Reset starts a new game at level 1.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg := config.DefaultInvadersConfig()
	if g.override != nil {
		cfg = *g.override
	} else if loaded, err := config.LoadInvaders(rc.ConfigDir); err == nil {
		cfg = loaded
	}
	preset, _ := config.ParseDifficulty(rc.Difficulty)
	config.ApplyInvadersPreset(&cfg, preset)

	g.rules = RulesFrom(cfg, rc.TickRate)
	g.state = NewState(g.rules)
	g.tick = 0
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

// Rules returns the rules of the current game.
func (g *Game) Rules() Rules {
	return g.rules
}

// Step applies movement and fire input, then advances the battle on ticks.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.state = TogglePause(g.state)
	}

	if g.state.Phase == core.PhaseNotStarted {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			g.state = Start(g.state)
		}
	} else if in.Has(core.ActionFire) {
		g.state = Fire(g.state, g.rules)
	}
	if in.Has(core.ActionLeft) {
		g.state = MoveShip(g.state, g.rules, -1)
	}
	if in.Has(core.ActionRight) {
		g.state = MoveShip(g.state, g.rules, 1)
	}

	if in.Tick && g.state.Phase == core.PhaseRunning {
		g.tick++
		g.state = Advance(g.state, g.rules)
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{Score: g.state.Score(g.rules), Phase: g.state.Phase}
	if g.state.Phase == core.PhaseOver {
		st.Outcome = fmt.Sprintf("Reached level %d", g.state.Level)
	}
	return st
}

func (g *Game) viewport() core.Viewport {
	return core.Viewport{
		FieldW: g.rules.Width,
		FieldH: g.rules.Height,
		Area:   core.NewRect(0, 2, g.screenW, g.screenH-2),
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Space Invaders │ Score: %d  Level: %d  Aliens: %d",
		g.state.Score(g.rules), g.state.Level, g.state.Alive())
	dst.DrawHeader(hud, core.ColorWhite)

	vp := g.viewport()
	if vp.Area.W < 30 || vp.Area.H < 10 {
		dst.DrawMessageBox(core.ColorYellow, "Window too small")
		return
	}

	for _, a := range g.state.Aliens {
		if !a.Alive {
			continue
		}
		c := alienColors[a.Row%len(alienColors)]
		dst.DrawRectColored(vp.ToRect(AlienRect(a, g.rules)), AlienChar, c)
	}

	for _, p := range g.state.Shots {
		x, y := vp.ToCell(p.X+g.rules.ShotSize/2, p.Y)
		dst.SetColored(x, y, ShotChar, core.ColorBrightYellow)
	}

	ship := vp.ToRect(g.state.ShipRect(g.rules))
	dst.DrawRectColored(ship, ShipChar, core.ColorBrightGreen)

	switch g.state.Phase {
	case core.PhaseNotStarted:
		dst.DrawMessageBox(core.ColorBrightGreen, "SPACE INVADERS", "", "Press Space or Enter to start")
	case core.PhasePaused:
		dst.DrawMessageBox(core.ColorYellow, "PAUSED", "Press P to resume")
	case core.PhaseOver:
		dst.DrawMessageBox(core.ColorBrightRed, "GAME OVER",
			fmt.Sprintf("Score: %d  Level: %d", g.state.Score(g.rules), g.state.Level),
			"", "Press R to restart")
	}
}
