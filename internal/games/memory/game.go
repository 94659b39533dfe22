// Package memory is the card-matching game: twelve cards, six pairs,
// two flips per move.
package memory

import (
	"fmt"
	"time"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
)

const (
	cols      = 4
	rows      = CardCount / cols
	cardW     = 7
	cardH     = 3
	hudHeight = 2
)

// Game implements registry.Game for the memory game.
type Game struct {
	state    State
	rng      core.RNG
	cursor   int
	delay    int // Reveal delay in ticks
	cfg      config.MemoryConfig
	override *config.MemoryConfig

	screenW int
	screenH int
}

func init() {
	registry.Register(config.GameMemory, func() registry.Game {
		return New()
	})
}

// New creates a game that reads its settings on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with fixed settings.
func NewWithConfig(cfg config.MemoryConfig) *Game {
	return &Game{override: &cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return config.GameMemory
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Memory"
}

// Description returns a one-line summary for the menu.
func (g *Game) Description() string {
	return "Find all six pairs in as few moves as possible."
}

// Controls returns a control summary for the menu.
func (g *Game) Controls() string {
	return "arrows move, enter/space flip, or click a card"
}

// Reset deals a fresh shuffled table.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg := config.DefaultMemoryConfig()
	if g.override != nil {
		cfg = *g.override
	} else if loaded, err := config.LoadMemory(rc.ConfigDir); err == nil {
		cfg = loaded
	}
	preset, _ := config.ParseDifficulty(rc.Difficulty)
	config.ApplyMemoryPreset(&cfg, preset)
	g.cfg = cfg

	g.delay = core.TicksFor(time.Duration(cfg.RevealDelayMs)*time.Millisecond, rc.TickRate)
	g.rng = core.NewRNG(rc.Seed)
	g.state = Deal(&g.rng)
	g.cursor = 0
	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Resize records the drawable area.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Snapshot returns the current table.
func (g *Game) Snapshot() State {
	return g.state
}

// RevealDelay returns the mismatch delay in ticks.
func (g *Game) RevealDelay() int {
	return g.delay
}

// Step moves the cursor, flips cards and runs the reveal timer.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state.Complete() {
		return core.StepResult{State: g.State()}
	}

	row, col := g.cursor/cols, g.cursor%cols
	switch {
	case in.Has(core.ActionUp):
		row = (row + rows - 1) % rows
	case in.Has(core.ActionDown):
		row = (row + 1) % rows
	case in.Has(core.ActionLeft):
		col = (col + cols - 1) % cols
	case in.Has(core.ActionRight):
		col = (col + 1) % cols
	}
	g.cursor = row*cols + col

	if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
		g.state = Flip(g.state, g.cursor, g.delay)
	}
	if p, ok := in.Click(); ok {
		if idx := g.cardAt(p); idx >= 0 {
			g.cursor = idx
			g.state = Flip(g.state, idx, g.delay)
		}
	}

	if in.Tick {
		g.state = Tick(g.state)
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state.Complete() {
		return core.GameState{
			Score:   g.state.Score(),
			Phase:   core.PhaseOver,
			Outcome: fmt.Sprintf("Cleared in %d moves", g.state.Moves),
		}
	}
	return core.GameState{Phase: core.PhaseRunning}
}

func (g *Game) tableRect() core.Rect {
	w := cols*cardW + cols - 1
	h := rows*cardH + rows - 1
	y := hudHeight + (g.screenH-hudHeight-2-h)/2
	return core.NewRect((g.screenW-w)/2, max(y, hudHeight), w, h)
}

func (g *Game) cardRect(idx int) core.Rect {
	t := g.tableRect()
	return core.NewRect(t.X+(idx%cols)*(cardW+1), t.Y+(idx/cols)*(cardH+1), cardW, cardH)
}

func (g *Game) cardAt(p core.Point) int {
	for i := 0; i < CardCount; i++ {
		if g.cardRect(i).Contains(p.X, p.Y) {
			return i
		}
	}
	return -1
}

// Render draws the table and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Memory │ Moves: %d  Pairs: %d/%d", g.state.Moves, g.state.Matches, Pairs)
	dst.DrawHeader(hud, core.ColorWhite)

	t := g.tableRect()
	if t.W > dst.Width() || t.Bottom() > dst.Height() {
		dst.DrawMessageBox(core.ColorYellow, "Window too small", "Resize to continue")
		return
	}

	for i, c := range g.state.Cards {
		g.renderCard(dst, i, c)
	}

	if g.state.Complete() {
		dst.DrawMessageBox(core.ColorBrightGreen,
			"All pairs found!",
			fmt.Sprintf("%d moves, score %d", g.state.Moves, g.state.Score()),
			"",
			"Press R to deal again")
	}
}

func (g *Game) renderCard(dst *core.Screen, idx int, c Card) {
	r := g.cardRect(idx)
	cx, cy := r.Center()

	border := core.ColorGray
	switch {
	case idx == g.cursor:
		border = core.ColorBrightCyan
	case c.Matched:
		border = core.ColorGreen
	}
	dst.DrawBoxColored(r, border)

	switch {
	case c.Matched:
		dst.SetColored(cx, cy, g.glyph(c), core.ColorBrightGreen)
	case c.FaceUp:
		dst.SetColored(cx, cy, g.glyph(c), core.ColorBrightYellow)
	default:
		dst.DrawHLineColored(r.X+1, cy, r.W-2, '░', core.ColorBlue)
	}
}

func (g *Game) glyph(c Card) rune {
	if c.Symbol < 0 || c.Symbol >= len(g.cfg.Symbols) {
		return '?'
	}
	return []rune(g.cfg.Symbols[c.Symbol])[0]
}
