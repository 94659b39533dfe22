// Package pong is one player against a CPU paddle. First to the win score
// takes the match.
package pong

import (
	"fmt"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
)

const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Game implements registry.Game for Pong.
type Game struct {
	state    State
	rules    Rules
	override *config.PongConfig
	tick     uint64

	screenW int
	screenH int
}

func init() {
	registry.Register(config.GamePong, func() registry.Game {
		return New()
	})
}

// New creates a game that reads its settings on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with fixed settings.
func NewWithConfig(cfg config.PongConfig) *Game {
	return &Game{override: &cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return config.GamePong
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pong"
}

// Description returns a one-line summary for the menu.
func (g *Game) Description() string {
	return "Classic paddle duel against the computer."
}

// Controls returns a control summary for the menu.
func (g *Game) Controls() string {
	return "up/down or W/S move, p pause"
}

// Reset starts a new match.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg := config.DefaultPongConfig()
	if g.override != nil {
		cfg = *g.override
	} else if loaded, err := config.LoadPong(rc.ConfigDir); err == nil {
		cfg = loaded
	}
	preset, _ := config.ParseDifficulty(rc.Difficulty)
	config.ApplyPongPreset(&cfg, preset)

	g.rules = RulesFrom(cfg, rc.TickRate)
	g.state = NewState(g.rules, core.NewRNG(rc.Seed))
	g.tick = 0
	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Resize records the drawable area.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Snapshot returns the current match state.
func (g *Game) Snapshot() State {
	return g.state
}

// Rules returns the rules of the current match.
func (g *Game) Rules() Rules {
	return g.rules
}

// Step moves the player's paddle one step per key press, then advances the
// ball on ticks.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.state = TogglePause(g.state)
	}
	if in.Has(core.ActionUp) {
		g.state = MovePlayer(g.state, g.rules, -1)
	}
	if in.Has(core.ActionDown) {
		g.state = MovePlayer(g.state, g.rules, 1)
	}

	if in.Tick && g.state.Phase == core.PhaseRunning {
		g.tick++
		g.state = Advance(g.state, g.rules)
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state. The score is the player's points.
func (g *Game) State() core.GameState {
	st := core.GameState{Score: g.state.PlayerScore, Phase: g.state.Phase}
	switch g.state.Winner {
	case SidePlayer:
		st.Outcome = fmt.Sprintf("You win %d-%d", g.state.PlayerScore, g.state.CPUScore)
	case SideCPU:
		st.Outcome = fmt.Sprintf("CPU wins %d-%d", g.state.CPUScore, g.state.PlayerScore)
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

	hud := fmt.Sprintf(" Pong │ You %d : %d CPU │ First to %d",
		g.state.PlayerScore, g.state.CPUScore, g.rules.WinScore)
	dst.DrawHeader(hud, core.ColorWhite)

	vp := g.viewport()
	if vp.Area.W < 20 || vp.Area.H < 8 {
		dst.DrawMessageBox(core.ColorYellow, "Window too small")
		return
	}

	// Net
	netX := vp.Area.X + vp.Area.W/2
	for y := vp.Area.Y; y < vp.Area.Bottom(); y += 2 {
		dst.SetColored(netX, y, NetChar, core.ColorGray)
	}

	dst.DrawRectColored(vp.ToRect(g.state.PlayerRect(g.rules)), PaddleChar, core.ColorBrightCyan)
	dst.DrawRectColored(vp.ToRect(g.state.CPURect(g.rules)), PaddleChar, core.ColorBrightRed)

	// Blink the ball while it waits to be served.
	if g.state.Phase != core.PhaseOver && (g.state.Serve == 0 || (g.state.Serve/8)%2 == 0) {
		bx, by := vp.ToCell(g.state.BallX+g.rules.Ball/2, g.state.BallY+g.rules.Ball/2)
		dst.SetColored(bx, by, BallChar, core.ColorBrightWhite)
	}

	switch g.state.Phase {
	case core.PhasePaused:
		dst.DrawMessageBox(core.ColorYellow, "PAUSED", "Press P to resume")
	case core.PhaseOver:
		title, color := "YOU WIN!", core.ColorBrightGreen
		if g.state.Winner == SideCPU {
			title, color = "CPU WINS!", core.ColorBrightRed
		}
		dst.DrawMessageBox(color, title,
			fmt.Sprintf("%d - %d", g.state.PlayerScore, g.state.CPUScore),
			"", "Press R to play again")
	}
}
