package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/storage"
)

func scoredStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	for _, score := range []int{10, 30, 20} {
		_, err := store.SaveScore(stubID, "session", score)
		require.NoError(t, err)
	}
	return store
}

func scoreboardFor(t *testing.T, store *storage.Store, gameID string) ScoreboardModel {
	t.Helper()
	m := NewScoreboardModel(Options{Store: store, Config: core.DefaultConfig(), Theme: DarkTheme()})
	for i := 0; m.CurrentGame() != gameID; i++ {
		require.Less(t, i, len(m.games), "game %q not listed", gameID)
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
	}
	return m
}

func TestScoreboardClearsCurrentGame(t *testing.T) {
	store := scoredStore(t)
	m := scoreboardFor(t, store, stubID)
	require.Equal(t, 3, m.Rows())
	assert.Contains(t, m.View(), "Plays: 3")

	next, _ := m.Update(runes("c"))
	m = next.(ScoreboardModel)

	assert.Zero(t, m.Rows())
	assert.Contains(t, m.View(), "No games finished this session")
	best, err := store.HighScore(stubID)
	require.NoError(t, err)
	assert.Zero(t, best)
}

func TestScoreboardClearWithoutStore(t *testing.T) {
	m := NewScoreboardModel(Options{Config: core.DefaultConfig(), Theme: DarkTheme()})
	next, cmd := m.Update(runes("c"))
	assert.Nil(t, cmd)
	assert.Zero(t, next.(ScoreboardModel).Rows())
}

func TestMenuShowsSessionSummary(t *testing.T) {
	empty := NewMenuModel(Options{Config: core.DefaultConfig(), Theme: DarkTheme()})
	assert.NotContains(t, empty.View(), "This session")

	m := NewMenuModel(Options{Store: scoredStore(t), Config: core.DefaultConfig(), Theme: DarkTheme()})
	assert.Contains(t, m.View(), "This session: 3 scored games across 1 titles")
}
