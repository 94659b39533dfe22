package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/platform/tui"
	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game. Esc returns to the menu.

Controls:
  Arrows/WASD - Move, steer or rotate
  Space       - Fire (invaders) or hard drop (tetris)
  Enter       - Place a mark, flip a card or start
  1-9         - Pick a tic-tac-toe cell
  Mouse       - Click a cell or card
  P           - Pause
  R           - Restart
  Esc/B       - Back to menu
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower snake, CPU, invaders and gravity
  normal - Classic timings
  hard   - Everything moves 50% faster

Examples:
  arcade play snake
  arcade play tetris --difficulty hard
  arcade play pong --config-dir ./my-configs`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive game picker",
	Long:  `Opens the menu. Pick a game with the arrow keys and Enter, Tab shows the scoreboard.`,
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		return fmt.Errorf("unknown game %q", gameID)
	}
	return runTUI(gameID)
}

func runMenu(_ *cobra.Command, _ []string) error {
	return runTUI("")
}

// runTUI opens the session scoreboard and runs the arcade. An empty gameID
// starts at the menu.
func runTUI(gameID string) error {
	checkGameConfigs(gameID)

	store, err := storage.OpenMemory()
	if err != nil {
		return err
	}
	defer store.Close()

	opts := tui.Options{
		Store:  store,
		Logger: logger,
		Theme:  tui.ResolveTheme(appCfg.Theme),
		Config: runtimeConfig(),
	}

	logger.Info("arcade started", "game", gameID, "tick_rate", opts.Config.TickRate, "theme", opts.Theme.Name)
	defer logger.Info("arcade stopped")

	return tui.Run(opts, gameID)
}

// checkGameConfigs warns about settings files that games would ignore.
// Games fall back to defaults, so this is the only place the player hears
// about a broken file.
func checkGameConfigs(gameID string) {
	ids := []string{gameID}
	if gameID == "" {
		ids = ids[:0]
		for _, g := range registry.List() {
			ids = append(ids, g.ID)
		}
	}
	for _, id := range ids {
		if err := config.Check(id, appCfg.ConfigDir); err != nil {
			logger.Warn("using default settings", "game", id, "err", err)
			fmt.Fprintf(os.Stderr, "warning: %v (using defaults)\n", err)
		}
	}
}

// runtimeConfig builds the config handed to games from the app settings
// and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = appCfg.TickRate
	cfg.Seed = appCfg.Seed
	cfg.Difficulty = appCfg.Difficulty
	cfg.ConfigDir = appCfg.ConfigDir
	return cfg
}
