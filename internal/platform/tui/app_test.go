package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
)

func newApp(t *testing.T, gameID string) App {
	t.Helper()
	a, err := NewApp(Options{Config: core.DefaultConfig(), Theme: DarkTheme()}, gameID)
	require.NoError(t, err)
	return a
}

func send(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	next, cmd := a.Update(msg)
	app, ok := next.(App)
	require.True(t, ok)
	return app, cmd
}

func TestAppStartsAtMenu(t *testing.T) {
	a := newApp(t, "")
	assert.Equal(t, screenMenu, a.screen)
	assert.Nil(t, a.Init())
	assert.Contains(t, a.View(), "Stub")
}

func TestAppDirectMount(t *testing.T) {
	a := newApp(t, stubID)
	assert.Equal(t, screenGame, a.screen)
	assert.NotNil(t, a.Init())
}

func TestAppUnknownGame(t *testing.T) {
	_, err := NewApp(Options{Config: core.DefaultConfig()}, "nope")
	assert.ErrorIs(t, err, registry.ErrUnknownGame)
}

func TestAppRouting(t *testing.T) {
	a := newApp(t, "")

	a, cmd := send(t, a, StartGameMsg{GameID: stubID})
	assert.Equal(t, screenGame, a.screen)
	assert.NotNil(t, cmd)

	a, _ = send(t, a, BackMsg{})
	assert.Equal(t, screenMenu, a.screen)

	a, _ = send(t, a, OpenScoresMsg{})
	assert.Equal(t, screenScores, a.screen)
	assert.Contains(t, a.View(), "HIGH SCORES")

	a, _ = send(t, a, BackMsg{})
	assert.Equal(t, screenMenu, a.screen)
}

func TestAppDropsTicksFromEarlierMount(t *testing.T) {
	a := newApp(t, stubID)
	first := lastStub
	oldEpoch := a.game.sched.Epoch()

	a, cmd := send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	a, _ = send(t, a, cmd())
	require.Equal(t, screenMenu, a.screen)

	a, _ = send(t, a, StartGameMsg{GameID: stubID})
	second := lastStub
	require.NotSame(t, first, second)

	a, cmd = send(t, a, TickMsg{Epoch: oldEpoch})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, second.ticks)

	_, cmd = send(t, a, TickMsg{Epoch: a.game.sched.Epoch()})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, second.ticks)
}

func TestAppIgnoresTicksOutsideGame(t *testing.T) {
	a := newApp(t, "")
	_, cmd := send(t, a, TickMsg{Epoch: 1})
	assert.Nil(t, cmd)
}

func TestMenuSelectStartsGame(t *testing.T) {
	a := newApp(t, "")
	for i, item := range a.menu.items {
		if item.GameID == stubID {
			a.menu.cursor = i
		}
	}

	a, cmd := send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, StartGameMsg{GameID: stubID}, cmd())

	_, cmd = send(t, a, tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, cmd)
	assert.Equal(t, OpenScoresMsg{}, cmd())
}
