package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/antidote-run/internal/core"
	"github.com/vovakirdan/antidote-run/internal/registry"
)

const sessionVariant = "session-scripted"

func init() {
	registry.Register(sessionVariant, func() registry.Game {
		return &scriptedGame{id: sessionVariant}
	})
}

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out, cmd
}

func selectVariant(t *testing.T, m SessionModel, id string) SessionModel {
	t.Helper()
	for i, item := range m.menu.items {
		if item.VariantID == id {
			m.menu.cursor = i
			m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			return m
		}
	}
	t.Fatalf("variant %q not in menu", id)
	return m
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(Deps{}, testConfig(), "tester")
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu", m.screen)
	}

	m = selectVariant(t, m, sessionVariant)
	if m.screen != screenGame {
		t.Fatalf("screen = %v, want game", m.screen)
	}
	if !strings.Contains(m.View(), "scripted") {
		t.Error("game view not rendered")
	}

	oldTick := m.game.tickID
	m, _ = updateSession(t, m, runeKey("b"))
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu after back", m.screen)
	}
	if m.quitting {
		t.Error("back should not quit the session")
	}

	// A tick from the finished game arrives while the menu is active.
	m, _ = updateSession(t, m, TickMsg{ID: oldTick, Time: time.Now()})
	if m.screen != screenMenu {
		t.Error("stale tick changed the screen")
	}
}

func TestSessionScoreboardAndBack(t *testing.T) {
	m := NewSessionModel(Deps{}, testConfig(), "tester")

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %v, want scores", m.screen)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view missing title")
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu", m.screen)
	}
}

func TestSessionQuitFromGame(t *testing.T) {
	m := NewSessionModel(Deps{}, testConfig(), "tester")
	m = selectVariant(t, m, sessionVariant)

	m, cmd := updateSession(t, m, runeKey("q"))
	if !m.quitting || cmd == nil {
		t.Error("q in game should quit the session")
	}
	if m.View() != "" {
		t.Error("quitting session should render nothing")
	}
}

func TestSessionTracksWindowSize(t *testing.T) {
	m := NewSessionModel(Deps{}, core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 30}, "tester")
	m, _ = updateSession(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m = selectVariant(t, m, sessionVariant)
	if m.game.config.ScreenW != 100 || m.game.config.ScreenH != 40 {
		t.Errorf("game config = %dx%d, want 100x40", m.game.config.ScreenW, m.game.config.ScreenH)
	}
	if m.game.config.Seed == 0 {
		t.Error("game seed not drawn")
	}
}
