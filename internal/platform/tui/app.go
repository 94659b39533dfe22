package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/session"
)

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenScores
)

// App is the single Bubble Tea program hosting the menu, a mounted game
// and the scoreboard. It routes between them and contributes no game
// rules.
type App struct {
	opts   Options
	screen screen
	menu   MenuModel
	game   GameModel
	scores ScoreboardModel
	err    error
}

// NewApp creates the shell. A non-empty gameID mounts that game straight
// away instead of showing the menu.
func NewApp(opts Options, gameID string) (App, error) {
	if opts.Scheduler == nil {
		opts.Scheduler = session.NewScheduler(opts.Config.TickRate, opts.logger())
	}
	a := App{opts: opts, menu: NewMenuModel(opts)}
	if gameID != "" {
		g, err := registry.Create(gameID)
		if err != nil {
			return a, err
		}
		a.game = NewGameModel(g, opts)
		a.screen = screenGame
	}
	return a, nil
}

// Init starts the tick loop if a game is mounted.
func (a App) Init() tea.Cmd {
	if a.screen == screenGame {
		return a.game.Init()
	}
	return nil
}

// Update routes navigation messages and forwards the rest to the active
// screen.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.opts.Config.ScreenW = msg.Width
		a.opts.Config.ScreenH = msg.Height

	case StartGameMsg:
		return a.mount(msg.GameID)

	case OpenScoresMsg:
		a.scores = NewScoreboardModel(a.opts)
		a.screen = screenScores
		return a, nil

	case BackMsg:
		a.screen = screenMenu
		a.menu = NewMenuModel(a.opts)
		return a, nil

	case TickMsg:
		// Ticks only drive the mounted game. Stale ones are dropped there.
		if a.screen != screenGame {
			return a, nil
		}
	}

	var cmd tea.Cmd
	var m tea.Model
	switch a.screen {
	case screenMenu:
		m, cmd = a.menu.Update(msg)
		a.menu = m.(MenuModel)
	case screenGame:
		m, cmd = a.game.Update(msg)
		a.game = m.(GameModel)
	case screenScores:
		m, cmd = a.scores.Update(msg)
		a.scores = m.(ScoreboardModel)
	}
	return a, cmd
}

func (a App) mount(gameID string) (tea.Model, tea.Cmd) {
	g, err := registry.Create(gameID)
	if err != nil {
		a.opts.logger().Error("cannot start game", "game", gameID, "err", err)
		a.err = err
		return a, nil
	}
	a.game = NewGameModel(g, a.opts)
	a.screen = screenGame
	return a, a.game.Init()
}

// View renders the active screen.
func (a App) View() string {
	switch a.screen {
	case screenGame:
		return a.game.View()
	case screenScores:
		return a.scores.View()
	default:
		return a.menu.View()
	}
}

// Err returns the last navigation error, if any.
func (a App) Err() error {
	return a.err
}

// Run starts the arcade in the terminal. A non-empty gameID skips the menu.
func Run(opts Options, gameID string) error {
	app, err := NewApp(opts, gameID)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse clicks for board games
	)

	_, err = p.Run()
	return err
}
