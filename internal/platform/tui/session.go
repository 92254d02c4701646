package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/antidote-run/internal/core"
	"github.com/vovakirdan/antidote-run/internal/registry"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel moves between the menu, a game and the scoreboard inside one
// Bubble Tea program. Local `menu` play and every SSH connection use it.
type SessionModel struct {
	deps     Deps
	config   core.RuntimeConfig
	user     string
	screen   sessionScreen
	menu     MenuModel
	game     Model
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a session that starts at the menu.
func NewSessionModel(deps Deps, cfg core.RuntimeConfig, user string) SessionModel {
	deps = deps.withDefaults()
	return SessionModel{
		deps:   deps,
		config: cfg,
		user:   user,
		menu:   NewMenuModel(deps.Store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen. Sub-models signal completion
// with tea.Quit, which the session swallows to switch screens instead.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.screen = screenScores
		m.scores = NewScoreboardModel(m.deps.Store, m.config.ScreenW, m.config.ScreenH, m.currentVariant())
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		game, err := registry.Create(m.menu.Selected().VariantID)
		if err != nil {
			m.deps.Logger.Warn("cannot create game", "error", err)
			m.menu = NewMenuModel(m.deps.Store, m.config)
			return m, nil
		}

		m.deps.Logger.Info("game selected", "user", m.user, "variant", game.ID())
		cfg := m.config
		cfg.Seed = 0
		m.game = NewModel(game, m.deps, cfg)
		m.game.allowBack = true
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.backToMenu()
		return m, nil
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scores.IsGoingBack() {
		m.backToMenu()
		return m, nil
	}

	return m, cmd
}

// backToMenu rebuilds the menu so high scores are fresh. Pending game ticks
// arrive while the menu is active and are ignored by it.
func (m *SessionModel) backToMenu() {
	cursor := m.menu.cursor
	m.menu = NewMenuModel(m.deps.Store, m.config)
	if cursor < len(m.menu.items) {
		m.menu.cursor = cursor
	}
	m.screen = screenMenu
}

func (m SessionModel) currentVariant() string {
	if len(m.menu.items) == 0 {
		return ""
	}
	return m.menu.items[m.menu.cursor].VariantID
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(deps Deps, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(deps, cfg, "local"),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
