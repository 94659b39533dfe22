package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/session"
	"github.com/vovakirdan/arcade-classics/internal/storage"
)

// Rows below the game reserved for the short and the full help view.
const (
	footerHeight     = 1
	fullFooterHeight = 4
)

// Options are the dependencies shared by every screen.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Theme  Theme
	Config core.RuntimeConfig

	// Scheduler is shared by every game mounted in one program so a tick
	// left over from an earlier mount can never match a later one.
	Scheduler *session.Scheduler
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// BackMsg asks the app to return to the menu.
type BackMsg struct{}

func backCmd() tea.Msg {
	return BackMsg{}
}

// GameModel is the Bubble Tea model running one mounted game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	session    *session.Session
	sched      *session.Scheduler
	logger     *log.Logger
	theme      Theme
	keyMapper  *KeyMapper
	help       help.Model
	config     core.RuntimeConfig
	state      core.GameState
	scoreSaved bool // Whether score has been saved for current game over
	quitting   bool
	left       bool // Player went back to the menu
}

// NewGameModel mounts a game: it starts a session, resets the game and
// starts its tick stream.
func NewGameModel(game registry.Game, opts Options) GameModel {
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.logger()
	sched := opts.Scheduler
	if sched == nil {
		sched = session.NewScheduler(cfg.TickRate, logger)
	}

	m := GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 1)),
		store:     opts.Store,
		session:   session.New(game.ID(), logger),
		sched:     sched,
		logger:    logger,
		theme:     opts.Theme,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		config:    cfg,
	}
	m.help.Width = cfg.ScreenW

	m.game.Reset(m.gameConfig())
	m.state = m.game.State()
	m.sched.Start()
	return m
}

// gameConfig is the runtime config the game sees: the screen minus the
// footer.
func (m GameModel) gameConfig() core.RuntimeConfig {
	footer := footerHeight
	if m.help.ShowAll {
		footer = fullFooterHeight
	}
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-footer, 1)
	return cfg
}

// Init starts the tick loop. A torn-down game gets no ticks.
func (m GameModel) Init() tea.Cmd {
	if !m.sched.Running() {
		return nil
	}
	return tickCmd(m.sched.Interval(), m.sched.Epoch())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		frame := core.NewInputFrame()
		if m.keyMapper.MapMouseToFrame(msg, &frame) {
			m.step(frame)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Game keys are applied immediately;
// the next tick does not wait for them.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.applySize()
		return m, nil
	}

	frame := core.NewInputFrame()
	if m.keyMapper.MapKeyToFrame(msg, &frame) {
		m.teardown()
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case frame.Has(core.ActionBack):
		m.teardown()
		m.left = true
		return m, backCmd

	case frame.Has(core.ActionRestart):
		m.restart()
		return m, nil
	}

	if !frame.Empty() {
		m.step(frame)
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps its state
// and only learns the new drawable area.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.applySize()
	return m, nil
}

func (m *GameModel) applySize() {
	cfg := m.gameConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)
	m.game.Resize(cfg.ScreenW, cfg.ScreenH)
}

// handleTick advances the game one tick. Ticks from a stopped stream are
// dropped and not rescheduled.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.sched.Accept(msg.Epoch) {
		return m, nil
	}
	m.step(core.NewTickFrame())
	return m, tickCmd(m.sched.Interval(), msg.Epoch)
}

func (m *GameModel) step(frame core.InputFrame) {
	result := m.game.Step(frame)
	m.state = result.State
	m.recordGameOver()
}

// recordGameOver saves the score once per finished game.
func (m *GameModel) recordGameOver() {
	if !m.state.GameOver() || m.scoreSaved {
		return
	}
	m.scoreSaved = true
	m.logger.Info("game over",
		"session", m.session.ID.Short(),
		"game", m.game.ID(),
		"score", m.state.Score,
		"outcome", m.state.Outcome,
	)

	if m.store == nil || m.state.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), string(m.session.ID), m.state.Score); err != nil {
		m.logger.Warn("cannot save score", "game", m.game.ID(), "err", err)
	}
}

// restart resets the game in place with a fresh seed. The session and its
// tick stream continue.
func (m *GameModel) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.gameConfig())
	m.state = m.game.State()
	m.scoreSaved = false
	m.logger.Debug("game restarted", "session", m.session.ID.Short(), "game", m.game.ID())
}

// teardown stops the tick stream and ends the session.
func (m *GameModel) teardown() {
	m.sched.Stop()
	m.session.End()
}

// State returns the latest game state.
func (m GameModel) State() core.GameState {
	return m.state
}

// Session returns the session of the mounted game.
func (m GameModel) Session() *session.Session {
	return m.session
}

// Left reports whether the player went back to the menu.
func (m GameModel) Left() bool {
	return m.left
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.left {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.theme) + "\n" + m.theme.Subtle.Render(m.help.View(m.keyMapper.Keys()))
}
