package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/session"
	"github.com/vovakirdan/arcade-classics/internal/storage"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Controls    string
	Mode        session.Mode
}

// StartGameMsg asks the app to mount a game.
type StartGameMsg struct {
	GameID string
}

// OpenScoresMsg asks the app to show the scoreboard.
type OpenScoresMsg struct{}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	store     *storage.Store
	theme     Theme
	keyMapper *KeyMapper
	quitting  bool
}

// NewMenuModel creates a menu listing every registered game.
func NewMenuModel(opts Options) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{
			GameID:      g.ID,
			Title:       g.Title,
			Description: g.Description,
			Controls:    g.Controls,
			Mode:        session.ModeFor(g.ID),
		})
	}

	return MenuModel{
		items:     items,
		width:     opts.Config.ScreenW,
		height:    opts.Config.ScreenH,
		store:     opts.Store,
		theme:     opts.Theme,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			id := m.items[m.cursor].GameID
			return m, func() tea.Msg { return StartGameMsg{GameID: id} }
		}

	case MenuActionScoreboard:
		return m, func() tea.Msg { return OpenScoresMsg{} }
	}

	return m, nil
}

// Selected returns the item under the cursor.
func (m MenuModel) Selected() (MenuItem, bool) {
	if len(m.items) == 0 {
		return MenuItem{}, false
	}
	return m.items[m.cursor], true
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("  C L A S S I C   A R C A D E  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.Subtle.Render("Select a game"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-16s %-8s", item.Title, item.Mode)
		if best := m.highScore(item.GameID); best > 0 {
			line += fmt.Sprintf(" best %d", best)
		}
		line = fmt.Sprintf("%-40s", line)
		if i == m.cursor {
			line = m.theme.Highlight.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if item, ok := m.Selected(); ok {
		b.WriteString("\n")
		b.WriteString(centerText(item.Description, m.width))
		b.WriteString("\n")
		b.WriteString(centerText(m.theme.Subtle.Render(item.Controls), m.width))
		b.WriteString("\n")
	}

	if summary := m.sessionSummary(); summary != "" {
		b.WriteString("\n")
		b.WriteString(centerText(m.theme.Subtle.Render(summary), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "↑/↓: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(m.theme.Subtle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) highScore(gameID string) int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore(gameID)
	if err != nil {
		return 0
	}
	return best
}

// sessionSummary counts the games finished so far in this run.
func (m MenuModel) sessionSummary() string {
	if m.store == nil {
		return ""
	}
	all, err := m.store.AllGameStats()
	if err != nil || len(all) == 0 {
		return ""
	}
	plays := 0
	for _, st := range all {
		plays += st.Plays
	}
	return fmt.Sprintf("This session: %d scored games across %d titles", plays, len(all))
}

// centerText centers text within given width. Styling escapes do not
// count toward the width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
