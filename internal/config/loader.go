package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type validator interface {
	Validate() error
}

// LoadTicTacToe loads Tic-Tac-Toe configuration.
// Search order: dir/tictactoe.yaml -> ~/.arcade/configs/tictactoe.yaml -> ./configs/tictactoe.yaml -> embedded default
func LoadTicTacToe(dir string) (TicTacToeConfig, error) {
	return load(GameTicTacToe, dir, DefaultTicTacToeConfig(), defaultTicTacToeYAML)
}

// LoadMemory loads Memory configuration using the same search order.
func LoadMemory(dir string) (MemoryConfig, error) {
	return load(GameMemory, dir, DefaultMemoryConfig(), defaultMemoryYAML)
}

// LoadSnake loads Snake configuration using the same search order.
func LoadSnake(dir string) (SnakeConfig, error) {
	return load(GameSnake, dir, DefaultSnakeConfig(), defaultSnakeYAML)
}

// LoadPong loads Pong configuration using the same search order.
func LoadPong(dir string) (PongConfig, error) {
	return load(GamePong, dir, DefaultPongConfig(), defaultPongYAML)
}

// LoadInvaders loads Space Invaders configuration using the same search order.
func LoadInvaders(dir string) (InvadersConfig, error) {
	return load(GameInvaders, dir, DefaultInvadersConfig(), defaultInvadersYAML)
}

// LoadTetris loads Tetris configuration using the same search order.
func LoadTetris(dir string) (TetrisConfig, error) {
	return load(GameTetris, dir, DefaultTetrisConfig(), defaultTetrisYAML)
}

// SearchPaths lists the files consulted for a game, most specific first.
func SearchPaths(gameID, dir string) []string {
	name := gameID + ".yaml"
	var paths []string
	if dir != "" {
		paths = append(paths, filepath.Join(dir, name))
	}
	if p := userConfigPath(name); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", name))
}

// load overlays the first settings file found onto the hardcoded defaults,
// so a file only needs the keys it changes.
func load[T validator](gameID, dir string, defaults T, embedded []byte) (T, error) {
	for _, path := range SearchPaths(gameID, dir) {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return defaults, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		return decode(path, data, defaults)
	}

	cfg, err := decode("embedded "+gameID, embedded, defaults)
	if err != nil {
		return defaults, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decode[T validator](source string, data []byte, base T) (T, error) {
	cfg := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("config: failed to parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("invalid %s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Check loads the settings of gameID and reports any problem with the
// file that would be used. Games fall back to defaults silently, so the
// shell calls this up front to surface mistakes.
func Check(gameID, dir string) error {
	var err error
	switch gameID {
	case GameTicTacToe:
		_, err = LoadTicTacToe(dir)
	case GameMemory:
		_, err = LoadMemory(dir)
	case GameSnake:
		_, err = LoadSnake(dir)
	case GamePong:
		_, err = LoadPong(dir)
	case GameInvaders:
		_, err = LoadInvaders(dir)
	case GameTetris:
		_, err = LoadTetris(dir)
	default:
		err = fmt.Errorf("%w %q", ErrUnknownGame, gameID)
	}
	return err
}
