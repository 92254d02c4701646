package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/antidote-run/internal/core"
	"github.com/vovakirdan/antidote-run/internal/logging"
	"github.com/vovakirdan/antidote-run/internal/registry"
	"github.com/vovakirdan/antidote-run/internal/storage"
)

// footerHeight is the number of rows below the playfield.
const footerHeight = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Deps are the collaborators a game model reports to.
// Nil fields are replaced with no-op implementations.
type Deps struct {
	Store  *storage.Store
	Sound  core.SoundSink
	Logger *log.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Sound == nil {
		d.Sound = core.NopSink{}
	}
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	return d
}

// Model is the Bubble Tea model for one running game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	deps     Deps
	config   core.RuntimeConfig
	keys     GameKeyMap
	help     help.Model
	input    core.InputFrame // one-shot actions since the last tick
	hold     *HoldTracker
	state    core.GameState
	tickID   int64
	lastTick time.Time
	runSaved bool

	allowBack  bool
	backToMenu bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, deps Deps, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-footerHeight, 1)),
		deps:   deps.withDefaults(),
		config: cfg,
		keys:   DefaultGameKeyMap(),
		help:   h,
		input:  core.NewInputFrame(),
		hold:   NewHoldTracker(DefaultHoldWindow),
		tickID: nextTickID(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if errReporter, ok := m.game.(interface{ ConfigError() error }); ok {
		if err := errReporter.ConfigError(); err != nil {
			m.deps.Logger.Warn("using default config", "error", err)
		}
	}
	m.deps.Logger.Info("run started", "variant", m.game.ID(), "seed", m.config.Seed)

	return tickCmd(m.tickID, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		if m.allowBack {
			m.backToMenu = true
		}
		return m, nil

	case core.ActionNone:
		return m, nil
	}

	if heldActions[action] {
		now := time.Now()
		switch action {
		case core.ActionLeft:
			m.hold.Release(core.ActionRight)
		case core.ActionRight:
			m.hold.Release(core.ActionLeft)
		}
		m.hold.Press(action, now)
	}
	m.input.Set(action)

	return m, nil
}

// handleResize keeps the playfield filling the terminal. The simulation runs
// in virtual coordinates, so the run itself is unaffected.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-footerHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	frame := m.input.Clone()
	m.hold.Apply(&frame, now)

	wasOver := m.state.GameOver
	result := m.game.Step(frame, dt)
	m.state = result.State

	for _, s := range result.Sounds {
		m.deps.Sound.Play(s)
	}

	if wasOver && !m.state.GameOver {
		m.runSaved = false
		m.hold.Reset()
		m.deps.Logger.Info("run restarted", "variant", m.game.ID())
	}

	if m.state.GameOver && !m.runSaved {
		m.recordRun()
		m.runSaved = true
	}

	m.input.Clear()
	return m, tickCmd(m.tickID, m.config.TickRate)
}

// recordRun stores the finished run. Storage failures are logged and ignored.
func (m *Model) recordRun() {
	run := RunRecord(m.game.ID(), m.state, m.game.HUD())
	m.deps.Logger.Info("run finished",
		"variant", run.Variant,
		"outcome", run.Outcome,
		"score", run.Score,
		"kills", run.Kills,
		"duration", run.Duration,
	)

	if m.deps.Store == nil {
		return
	}
	if _, err := m.deps.Store.SaveRun(run); err != nil {
		m.deps.Logger.Warn("could not save run", "error", err)
	}
}

// RunRecord builds the storage record for a finished run.
func RunRecord(variant string, state core.GameState, hud core.HUD) storage.Run {
	outcome := storage.OutcomeLost
	if state.Phase == core.PhaseWon {
		outcome = storage.OutcomeWon
	}
	return storage.Run{
		Variant:  variant,
		Score:    state.Score,
		Kills:    hud.Kills,
		Outcome:  outcome,
		Duration: time.Duration(state.Elapsed * float64(time.Second)).Round(time.Millisecond),
	}
}

// saveScreenshot saves the current screen to ~/.antidote/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.deps.Logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".antidote", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.deps.Logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.deps.Logger.Warn("screenshot failed", "error", err)
		return
	}
	m.deps.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, deps Deps, cfg core.RuntimeConfig) error {
	model := NewModel(game, deps, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
