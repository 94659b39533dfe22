package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	// Given scores for two games
	for _, sc := range []int{100, 50, 200, 100} {
		_, err := store.SaveScore("snake", "s-1", sc)
		require.NoError(t, err)
	}
	_, err := store.SaveScore("tetris", "s-2", 500)
	require.NoError(t, err)

	// When reading the snake board
	scores, err := store.TopScores("snake", 10)
	require.NoError(t, err)

	// Then only snake scores come back, best first, ties by insertion
	require.Len(t, scores, 4)
	assert.Equal(t, []int{200, 100, 100, 50}, []int{scores[0].Score, scores[1].Score, scores[2].Score, scores[3].Score})
	assert.Less(t, scores[1].ID, scores[2].ID)
	assert.Equal(t, "s-1", scores[0].SessionID)
	assert.WithinDuration(t, time.Now(), scores[0].CreatedAt, time.Minute)
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 15; i++ {
		_, err := store.SaveScore("pong", "", i)
		require.NoError(t, err)
	}

	top, err := store.TopScores("pong", 5)
	require.NoError(t, err)
	require.Len(t, top, 5)
	assert.Equal(t, 15, top[0].Score)

	def, err := store.TopScores("pong", 0)
	require.NoError(t, err)
	assert.Len(t, def, 10, "non-positive limit falls back to 10")
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.HighScore("invaders")
	require.NoError(t, err)
	assert.Zero(t, best)

	_, _ = store.SaveScore("invaders", "", 300)
	_, _ = store.SaveScore("invaders", "", 1200)

	best, err = store.HighScore("invaders")
	require.NoError(t, err)
	assert.Equal(t, 1200, best)
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GameStats("memory")
	require.NoError(t, err)
	assert.Zero(t, empty.Plays)
	assert.True(t, empty.Last.IsZero())

	_, _ = store.SaveScore("memory", "", 40)
	_, _ = store.SaveScore("memory", "", 80)

	st, err := store.GameStats("memory")
	require.NoError(t, err)
	assert.Equal(t, 2, st.Plays)
	assert.Equal(t, 80, st.Best)
	assert.InDelta(t, 60.0, st.Average, 0.001)
	assert.False(t, st.Last.IsZero())
}

func TestStoreAllGameStats(t *testing.T) {
	store := openTestStore(t)

	_, _ = store.SaveScore("tetris", "", 10)
	_, _ = store.SaveScore("snake", "", 3)
	_, _ = store.SaveScore("snake", "", 7)

	all, err := store.AllGameStats()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "snake", all[0].GameID)
	assert.Equal(t, 2, all[0].Plays)
	assert.Equal(t, 7, all[0].Best)
	assert.Equal(t, "tetris", all[1].GameID)
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	_, _ = store.SaveScore("snake", "", 5)
	_, _ = store.SaveScore("pong", "", 3)

	require.NoError(t, store.ClearScores("snake"))

	snake, err := store.TopScores("snake", 10)
	require.NoError(t, err)
	assert.Empty(t, snake)

	pong, err := store.TopScores("pong", 10)
	require.NoError(t, err)
	assert.Len(t, pong, 1, "other games keep their scores")
}

func TestStoresAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	_, err := a.SaveScore("snake", "", 9)
	require.NoError(t, err)

	best, err := b.HighScore("snake")
	require.NoError(t, err)
	assert.Zero(t, best, "each in-memory store is its own database")
}
