// arcade is a collection of classic arcade and board games for the terminal.
//
// Usage:
//
//	arcade                   - Start menu to pick games interactively
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade sim <game>        - Run a game headless and print the final frame
//	arcade config <game>     - Print a game's default settings
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--difficulty <name>   - easy, normal or hard
//	--theme <name>        - auto, light or dark
//	--config <file>       - App settings YAML
//	--config-dir <dir>    - Extra directory searched for <game>.yaml
//	--log-file <file>     - Write logs here (logging is off otherwise)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-classics/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/arcade-classics/internal/games/invaders"
	_ "github.com/vovakirdan/arcade-classics/internal/games/memory"
	_ "github.com/vovakirdan/arcade-classics/internal/games/pong"
	_ "github.com/vovakirdan/arcade-classics/internal/games/snake"
	_ "github.com/vovakirdan/arcade-classics/internal/games/tetris"
	_ "github.com/vovakirdan/arcade-classics/internal/games/tictactoe"
)

var (
	// Global flags
	flagConfig     string
	flagConfigDir  string
	flagFPS        int
	flagSeed       int64
	flagDifficulty string
	flagTheme      string
	flagLogFile    string
	flagLogLevel   string

	// Set up by the root command before any subcommand runs.
	appCfg  config.App
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Classic Arcade - tic-tac-toe, memory, snake, pong, space invaders and tetris",
	Long: `Classic Arcade brings six small classics to your terminal.

Available commands:
  menu     - Interactive game picker (default)
  list     - Show all available games
  play     - Play a specific game directly
  sim      - Run a game without a terminal and print the result
  config   - Print a game's default settings

Examples:
  arcade
  arcade play tetris --difficulty hard
  arcade play pong --theme light
  arcade sim snake --seed 7 --ticks 600 --script "0:confirm,90:down"
  arcade config invaders > ~/.arcade/configs/invaders.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to app settings YAML")
	pf.StringVar(&flagConfigDir, "config-dir", "", "Extra directory searched for <game>.yaml")
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagTheme, "theme", "auto", "Color theme: auto, light, dark")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file (logging is off when empty)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.SetUsageTemplate(rootCmd.UsageTemplate() + "\nEnvironment:\n" + config.EnvHelp() + "\n")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the app settings, applies flags given on the command line and
// opens the log.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadApp(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("difficulty") {
		cfg.Difficulty = flagDifficulty
	}
	if flags.Changed("theme") {
		cfg.Theme = flagTheme
	}
	if flags.Changed("config-dir") {
		cfg.ConfigDir = flagConfigDir
	}
	if flags.Changed("log-file") {
		cfg.LogFile = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	appCfg = cfg

	return openLog(cfg)
}

// openLog builds the logger. The TUI owns the terminal, so logs only go to
// a file.
func openLog(cfg config.App) error {
	if cfg.LogFile == "" {
		return nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	})
	logger.Debug("logger ready", "level", level)
	return nil
}
