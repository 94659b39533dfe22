package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// The embedded files and the hardcoded defaults must describe the same game.
func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	check := func(t *testing.T, data []byte, into, want validator) {
		t.Helper()
		require.NoError(t, yaml.Unmarshal(data, into))
		assert.Equal(t, want, into)
		assert.NoError(t, want.Validate())
	}

	t.Run("tictactoe", func(t *testing.T) {
		want := DefaultTicTacToeConfig()
		check(t, defaultTicTacToeYAML, &TicTacToeConfig{}, &want)
	})
	t.Run("memory", func(t *testing.T) {
		want := DefaultMemoryConfig()
		check(t, defaultMemoryYAML, &MemoryConfig{}, &want)
	})
	t.Run("snake", func(t *testing.T) {
		want := DefaultSnakeConfig()
		check(t, defaultSnakeYAML, &SnakeConfig{}, &want)
	})
	t.Run("pong", func(t *testing.T) {
		want := DefaultPongConfig()
		check(t, defaultPongYAML, &PongConfig{}, &want)
	})
	t.Run("invaders", func(t *testing.T) {
		want := DefaultInvadersConfig()
		check(t, defaultInvadersYAML, &InvadersConfig{}, &want)
	})
	t.Run("tetris", func(t *testing.T) {
		want := DefaultTetrisConfig()
		check(t, defaultTetrisYAML, &TetrisConfig{}, &want)
	})
}

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
}

func TestLoadOverlaysPartialFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "snake.yaml", "move_every_ms: 90\ngrid:\n  width: 30\n  height: 30\n")

	cfg, err := LoadSnake(dir)
	require.NoError(t, err)

	assert.Equal(t, 90, cfg.MoveEveryMs)
	assert.Equal(t, 30, cfg.Grid.Width)
	// Untouched keys keep their defaults.
	assert.Equal(t, 15, cfg.Food.X)
	assert.Equal(t, 1, cfg.PointsPerFood)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pong.yaml", "win_scor: 3\n")

	_, err := LoadPong(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pong.yaml")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tetris.yaml", "kicks: [1, 0]\n")

	cfg, err := LoadTetris(dir)
	require.Error(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg, "defaults are returned alongside the error")
}

func TestLoadMemoryReplacesSymbols(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "memory.yaml", "symbols: [A, B, C, D, E, F]\n")

	cfg, err := LoadMemory(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, cfg.Symbols)
	assert.Equal(t, 1000, cfg.RevealDelayMs)
}

func TestSearchPaths(t *testing.T) {
	paths := SearchPaths("invaders", "/tmp/custom")

	require.GreaterOrEqual(t, len(paths), 2)
	assert.Equal(t, filepath.Join("/tmp/custom", "invaders.yaml"), paths[0])
	assert.Equal(t, filepath.Join("configs", "invaders.yaml"), paths[len(paths)-1])
}

func TestDefaultYAML(t *testing.T) {
	data, err := DefaultYAML(GameTetris)
	require.NoError(t, err)
	assert.Contains(t, string(data), "gravity_ms")

	_, err = DefaultYAML("breakout")
	assert.ErrorIs(t, err, ErrUnknownGame)
}

func TestValidateCatchesBadConfigs(t *testing.T) {
	snake := DefaultSnakeConfig()
	snake.Start.Length = 12
	assert.Error(t, snake.Validate())

	mem := DefaultMemoryConfig()
	mem.Symbols[1] = mem.Symbols[0]
	assert.Error(t, mem.Validate())

	inv := DefaultInvadersConfig()
	inv.Aliens.MaxCols = 20
	assert.Error(t, inv.Validate())

	pong := DefaultPongConfig()
	pong.Ball.SpeedUp = 0.9
	assert.Error(t, pong.Validate())
}

func TestParseDifficulty(t *testing.T) {
	p, err := ParseDifficulty("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)

	p, err = ParseDifficulty("hard")
	require.NoError(t, err)
	assert.Equal(t, 1.5, p.Factor())

	_, err = ParseDifficulty("nightmare")
	assert.Error(t, err)
}

func TestApplyPresets(t *testing.T) {
	snake := DefaultSnakeConfig()
	ApplySnakePreset(&snake, DifficultyHard)
	assert.Equal(t, 100, snake.MoveEveryMs)

	tetris := DefaultTetrisConfig()
	ApplyTetrisPreset(&tetris, DifficultyEasy)
	assert.Equal(t, 1333, tetris.GravityMs)

	pong := DefaultPongConfig()
	ApplyPongPreset(&pong, DifficultyNormal)
	assert.Equal(t, 5.0, pong.CPU.Speed)

	inv := DefaultInvadersConfig()
	ApplyInvadersPreset(&inv, DifficultyHard)
	assert.Equal(t, 1.5, inv.Aliens.Speed)
	assert.Equal(t, 6.0, inv.Aliens.MaxSpeed)
}

func TestLoadAppFromEnv(t *testing.T) {
	t.Setenv("ARCADE_TICK_RATE", "30")
	t.Setenv("ARCADE_THEME", "dark")
	t.Setenv("ARCADE_SEED", "99")

	cfg, err := LoadApp("")
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.TickRate)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, "normal", cfg.Difficulty)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadAppFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arcade.yaml")
	writeFile(t, dir, "arcade.yaml", "tick_rate: 45\ndifficulty: easy\nlog_file: /tmp/arcade.log\n")

	cfg, err := LoadApp(path)
	require.NoError(t, err)

	assert.Equal(t, 45, cfg.TickRate)
	assert.Equal(t, "easy", cfg.Difficulty)
	assert.Equal(t, "/tmp/arcade.log", cfg.LogFile)
	assert.Equal(t, "auto", cfg.Theme)
}

func TestLoadAppRejectsBadTheme(t *testing.T) {
	t.Setenv("ARCADE_THEME", "neon")

	_, err := LoadApp("")
	assert.Error(t, err)
}

func TestEnvHelpListsVariables(t *testing.T) {
	assert.Contains(t, EnvHelp(), "ARCADE_TICK_RATE")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, Check(GameSnake, dir))

	writeFile(t, dir, "snake.yaml", "grid: [1, 2]\n")
	assert.Error(t, Check(GameSnake, dir))

	assert.ErrorIs(t, Check("nope", dir), ErrUnknownGame)
}
