package invaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
)

func defaultRules() Rules {
	return RulesFrom(config.DefaultInvadersConfig(), 60)
}

// running returns a started game holding only the given aliens.
func running(r Rules, aliens ...Alien) State {
	s := NewState(r)
	s.Phase = core.PhaseRunning
	s.Aliens = aliens
	return s
}

func TestGridGrowth(t *testing.T) {
	r := defaultRules()
	tests := []struct {
		level      int
		rows, cols int
	}{
		{1, 3, 8},
		{2, 4, 10},
		{3, 5, 12},
		{4, 6, 12},
		{9, 6, 12},
	}
	for _, tt := range tests {
		rows, cols := r.Grid(tt.level)
		assert.Equal(t, tt.rows, rows, "level %d rows", tt.level)
		assert.Equal(t, tt.cols, cols, "level %d cols", tt.level)
	}
}

func TestSpeedCapped(t *testing.T) {
	r := defaultRules()
	assert.InDelta(t, 1.0, r.SpeedAt(1), 1e-9)
	assert.InDelta(t, 1.25, r.SpeedAt(2), 1e-9)
	assert.InDelta(t, 1.5625, r.SpeedAt(3), 1e-9)
	assert.InDelta(t, 4.0, r.SpeedAt(8), 1e-9)
	assert.InDelta(t, 4.0, r.SpeedAt(20), 1e-9)
}

func TestNewState(t *testing.T) {
	r := defaultRules()
	s := NewState(r)

	assert.Equal(t, core.PhaseNotStarted, s.Phase)
	assert.Equal(t, 380.0, s.ShipX)
	assert.Equal(t, 560.0, s.ShipY)
	assert.Equal(t, 1, s.Level)
	require.Len(t, s.Aliens, 24)
	assert.Equal(t, Alien{X: 100, Y: 50, Row: 0, Alive: true}, s.Aliens[0])
	assert.Equal(t, Alien{X: 450, Y: 150, Row: 2, Alive: true}, s.Aliens[23])
	assert.Equal(t, 15, r.Cooldown, "250ms at 60 ticks per second")
}

func TestAdvanceIgnoredUntilStarted(t *testing.T) {
	r := defaultRules()
	s := NewState(r)
	assert.Equal(t, s, Advance(s, r))
}

func TestFormationMarches(t *testing.T) {
	r := defaultRules()
	s := running(r, Alien{X: 100, Y: 100, Alive: true})

	s = Advance(s, r)
	assert.Equal(t, 101.0, s.Aliens[0].X)
	assert.Equal(t, 100.0, s.Aliens[0].Y)
}

func TestFormationReversesAndDrops(t *testing.T) {
	r := defaultRules()
	s := running(r,
		Alien{X: 769, Y: 100, Alive: true},
		Alien{X: 600, Y: 100, Alive: true},
	)

	s = Advance(s, r)
	assert.Equal(t, 770.0, s.Aliens[0].X, "right edge touches the field edge")
	assert.Equal(t, 601.0, s.Aliens[1].X)
	assert.Equal(t, 120.0, s.Aliens[0].Y)
	assert.Equal(t, 120.0, s.Aliens[1].Y)
	assert.Equal(t, -1.0, s.Dir)

	s = Advance(s, r)
	assert.Equal(t, 769.0, s.Aliens[0].X)
	assert.Equal(t, 600.0, s.Aliens[1].X)
	assert.Equal(t, 120.0, s.Aliens[0].Y, "drops once per turn")
	assert.Equal(t, -1.0, s.Dir)
}

func TestFormationTurnsAtLeftEdge(t *testing.T) {
	r := defaultRules()
	s := running(r, Alien{X: 1, Y: 100, Alive: true})
	s.Dir = -1

	s = Advance(s, r)
	assert.Equal(t, 0.0, s.Aliens[0].X)
	assert.Equal(t, 120.0, s.Aliens[0].Y)
	assert.Equal(t, 1.0, s.Dir)

	s = Advance(s, r)
	assert.Equal(t, 1.0, s.Aliens[0].X)
	assert.Equal(t, 120.0, s.Aliens[0].Y)
}

func TestFormationOvershootIsPushedBack(t *testing.T) {
	r := defaultRules()
	s := running(r, Alien{X: 768.5, Y: 100, Alive: true})
	s.Speed = 2

	s = Advance(s, r)
	assert.Equal(t, 770.0, s.Aliens[0].X)
	assert.Equal(t, 120.0, s.Aliens[0].Y)
	assert.Equal(t, -1.0, s.Dir)
}

func TestDeadAliensDoNotTurnFormation(t *testing.T) {
	r := defaultRules()
	s := running(r,
		Alien{X: 790, Y: 100, Alive: false},
		Alien{X: 300, Y: 100, Alive: true},
	)

	s = Advance(s, r)
	assert.Equal(t, 1.0, s.Dir)
	assert.Equal(t, 100.0, s.Aliens[1].Y)
}

func TestShotKillsAlien(t *testing.T) {
	r := defaultRules()
	s := running(r,
		Alien{X: 100, Y: 100, Alive: true},
		Alien{X: 300, Y: 100, Alive: true},
	)
	s.Shots = []Shot{{X: 110, Y: 130}}

	s = Advance(s, r)
	assert.False(t, s.Aliens[0].Alive)
	assert.True(t, s.Aliens[1].Alive)
	assert.Empty(t, s.Shots, "shot is used up")
	assert.Equal(t, 1, s.Killed)
	assert.Equal(t, 100, s.Score(r))
	assert.Equal(t, 1, s.Alive())
}

func TestShotHitsOneAlienOnly(t *testing.T) {
	r := defaultRules()
	s := running(r,
		Alien{X: 100, Y: 100, Alive: true},
		Alien{X: 100, Y: 100, Alive: true},
		Alien{X: 500, Y: 100, Alive: true},
	)
	s.Shots = []Shot{{X: 110, Y: 130}}

	s = Advance(s, r)
	assert.Equal(t, 1, s.Killed)
	assert.Equal(t, 2, s.Alive())
}

func TestShotLeavesField(t *testing.T) {
	r := defaultRules()
	s := running(r, Alien{X: 600, Y: 300, Alive: true})
	s.Shots = []Shot{{X: 100, Y: 2}}

	s = Advance(s, r)
	require.Len(t, s.Shots, 1)
	assert.Equal(t, -3.0, s.Shots[0].Y)

	s = Advance(s, r)
	assert.Empty(t, s.Shots)
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	r := defaultRules()
	s := running(r, Alien{X: 100, Y: 100, Alive: true}, Alien{X: 300, Y: 100, Alive: true})
	s.Shots = []Shot{{X: 110, Y: 130}}

	_ = Advance(s, r)
	assert.True(t, s.Aliens[0].Alive)
	assert.Equal(t, 100.0, s.Aliens[0].X)
	assert.Equal(t, 130.0, s.Shots[0].Y)
}

func TestGameOverWhenAliensLand(t *testing.T) {
	r := defaultRules()

	s := running(r, Alien{X: 300, Y: 529, Alive: true})
	s = Advance(s, r)
	assert.Equal(t, core.PhaseRunning, s.Phase)

	s = running(r, Alien{X: 300, Y: 530, Alive: true})
	s = Advance(s, r)
	assert.Equal(t, core.PhaseOver, s.Phase)

	frozen := s
	assert.Equal(t, frozen, Advance(s, r))
}

func TestLevelUpWhenWaveCleared(t *testing.T) {
	r := defaultRules()
	s := running(r, Alien{X: 100, Y: 100, Alive: true})
	s.Shots = []Shot{{X: 110, Y: 130}}

	s = Advance(s, r)
	assert.Equal(t, 2, s.Level)
	assert.Len(t, s.Aliens, 40)
	assert.Equal(t, 4, s.Aliens[len(s.Aliens)-1].Row+1)
	assert.InDelta(t, 1.25, s.Speed, 1e-9)
	assert.Equal(t, 1.0, s.Dir)
	assert.Equal(t, 100, s.Score(r), "kills carry over")
	assert.Equal(t, core.PhaseRunning, s.Phase)
}

func TestFireCooldown(t *testing.T) {
	r := defaultRules()
	s := running(r, Alien{X: 100, Y: 50, Alive: true})

	s = Fire(s, r)
	require.Len(t, s.Shots, 1)
	assert.Equal(t, Shot{X: 397.5, Y: 555}, s.Shots[0])

	s = Fire(s, r)
	assert.Len(t, s.Shots, 1, "still cooling down")

	for i := 0; i < r.Cooldown; i++ {
		s = Advance(s, r)
	}
	s = Fire(s, r)
	assert.Len(t, s.Shots, 2)
}

func TestMoveShipClamped(t *testing.T) {
	r := defaultRules()
	s := running(r)
	s.ShipX = 5

	s = MoveShip(s, r, -1)
	assert.Equal(t, 0.0, s.ShipX)

	s.ShipX = 755
	s = MoveShip(s, r, 1)
	assert.Equal(t, 760.0, s.ShipX)
}
