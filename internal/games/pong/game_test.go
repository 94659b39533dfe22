package pong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
)

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultPongConfig())
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

func press(a core.Action) core.InputFrame {
	f := core.NewInputFrame()
	f.Set(a)
	return f
}

func TestRegistered(t *testing.T) {
	assert.True(t, registry.Exists(config.GamePong))
}

func TestKeyPressMovesPaddle(t *testing.T) {
	g := newGame(t, 1)

	g.Step(press(core.ActionUp))
	assert.Equal(t, 130.0, g.Snapshot().PlayerY)

	g.Step(press(core.ActionDown))
	g.Step(press(core.ActionDown))
	assert.Equal(t, 170.0, g.Snapshot().PlayerY)
}

func TestOnlyTicksMoveBall(t *testing.T) {
	g := newGame(t, 1)
	before := g.Snapshot()

	g.Step(press(core.ActionUp))
	assert.Equal(t, before.Serve, g.Snapshot().Serve)

	g.Step(core.NewTickFrame())
	assert.Equal(t, before.Serve-1, g.Snapshot().Serve)
}

func TestPauseFreezesMatch(t *testing.T) {
	g := newGame(t, 1)
	g.Step(press(core.ActionPause))
	require.True(t, g.State().Paused())

	before := g.Snapshot()
	for i := 0; i < 50; i++ {
		g.Step(core.NewTickFrame())
	}
	assert.Equal(t, before, g.Snapshot())

	g.Step(press(core.ActionPause))
	assert.Equal(t, core.PhaseRunning, g.State().Phase)
}

func TestDeterminism(t *testing.T) {
	run := func() State {
		g := newGame(t, 99)
		for i := 0; i < 600; i++ {
			f := core.NewTickFrame()
			if i%7 == 0 {
				f.Set(core.ActionDown)
			}
			if i%11 == 0 {
				f.Set(core.ActionUp)
			}
			g.Step(f)
		}
		return g.Snapshot()
	}
	assert.Equal(t, run(), run())
}

func TestHardDifficultySpeedsCPU(t *testing.T) {
	g := New()
	cfg := core.DefaultConfig()
	cfg.ConfigDir = t.TempDir()
	cfg.Difficulty = core.DifficultyHard
	g.Reset(cfg)
	assert.InDelta(t, 7.5, g.Rules().CPUSpeed, 1e-9)
}

func TestOutcome(t *testing.T) {
	g := newGame(t, 1)
	g.state.PlayerScore = 2
	g.state.CPUScore = 5
	g.state.Winner = SideCPU
	g.state.Phase = core.PhaseOver

	st := g.State()
	assert.True(t, st.GameOver())
	assert.Equal(t, 2, st.Score)
	assert.Equal(t, "CPU wins 5-2", st.Outcome)
}

func TestRender(t *testing.T) {
	g := newGame(t, 1)
	screen := core.NewScreen(80, 23)
	g.Render(screen)

	assert.True(t, screen.Contains("You 0 : 0 CPU"))
	assert.True(t, screen.Contains(string(PaddleChar)))
	assert.Equal(t, NetChar, screen.Get(40, 2))

	g.state.Phase = core.PhaseOver
	g.state.Winner = SidePlayer
	g.Render(screen)
	assert.True(t, screen.Contains("YOU WIN!"))
}
