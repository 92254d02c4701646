package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/antidote-run/internal/core"
	"github.com/vovakirdan/antidote-run/internal/storage"
)

// scriptedGame is a registry.Game whose phase is driven by the test.
type scriptedGame struct {
	id     string
	phase  core.Phase
	score  int
	resets int
	frames []core.InputFrame
	dts    []float64
	sounds []core.Sound
}

func (g *scriptedGame) ID() string    { return g.id }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.phase = core.PhaseRunning
}

func (g *scriptedGame) Step(in core.InputFrame, dt float64) core.StepResult {
	g.frames = append(g.frames, in)
	g.dts = append(g.dts, dt)
	if g.phase.Terminal() && in.Has(core.ActionRestart) {
		g.phase = core.PhaseRunning
	}
	return core.StepResult{State: g.State(), Sounds: g.sounds}
}

func (g *scriptedGame) Render(s *core.Screen) {
	s.Clear()
	s.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Phase:    g.phase,
		GameOver: g.phase.Terminal(),
		Elapsed:  2.5,
	}
}

func (g *scriptedGame) HUD() core.HUD {
	return core.HUD{Score: g.score, Kills: 3, Phase: g.phase}
}

type recordingSink struct {
	played []core.Sound
}

func (r *recordingSink) Play(s core.Sound) {
	r.played = append(r.played, s)
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func tick(m Model, at time.Time) TickMsg {
	return TickMsg{ID: m.tickID, Time: at}
}

func TestMapKey(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"a", runeKey("a"), core.ActionLeft},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d", runeKey("d"), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"f", runeKey("f"), core.ActionFire},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionFire},
		{"p", runeKey("p"), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r", runeKey("r"), core.ActionRestart},
		{"b", runeKey("b"), core.ActionBack},
		{"q", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("z"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModelOneShotActionsLastOneTick(t *testing.T) {
	g := &scriptedGame{id: "scripted"}
	m := NewModel(g, Deps{}, testConfig())
	m.Init()

	start := time.Now()
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, tick(m, start))
	m = update(t, m, tick(m, start.Add(16*time.Millisecond)))

	if len(g.frames) != 2 {
		t.Fatalf("steps = %d, want 2", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionJump) {
		t.Error("jump missing from first frame")
	}
	if g.frames[1].Has(core.ActionJump) {
		t.Error("jump repeated in second frame")
	}
}

func TestModelHeldActionsSpanTicks(t *testing.T) {
	g := &scriptedGame{id: "scripted"}
	m := NewModel(g, Deps{}, testConfig())

	m = update(t, m, runeKey("d"))
	now := time.Now()
	m = update(t, m, tick(m, now))
	m = update(t, m, tick(m, now.Add(50*time.Millisecond)))

	for i, f := range g.frames {
		if !f.Has(core.ActionRight) {
			t.Errorf("frame %d lost held right", i)
		}
	}

	// Pressing the opposite direction releases the first one.
	m = update(t, m, runeKey("a"))
	update(t, m, tick(m, now.Add(60*time.Millisecond)))

	last := g.frames[len(g.frames)-1]
	if last.Has(core.ActionRight) || !last.Has(core.ActionLeft) {
		t.Errorf("direction switch not applied: right=%v left=%v",
			last.Has(core.ActionRight), last.Has(core.ActionLeft))
	}
}

func TestModelDeltaFromTickTimestamps(t *testing.T) {
	g := &scriptedGame{id: "scripted"}
	m := NewModel(g, Deps{}, testConfig())

	start := time.Now()
	m = update(t, m, tick(m, start))
	update(t, m, tick(m, start.Add(50*time.Millisecond)))

	if len(g.dts) != 2 {
		t.Fatalf("steps = %d, want 2", len(g.dts))
	}
	if want := 1.0 / 60; g.dts[0] != want {
		t.Errorf("first dt = %v, want %v", g.dts[0], want)
	}
	if diff := g.dts[1] - 0.05; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("second dt = %v, want 0.05", g.dts[1])
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	g := &scriptedGame{id: "scripted"}
	m := NewModel(g, Deps{}, testConfig())

	m = update(t, m, TickMsg{ID: m.tickID + 1, Time: time.Now()})
	if len(g.frames) != 0 {
		t.Errorf("stale tick stepped the game %d times", len(g.frames))
	}
}

func TestModelForwardsSounds(t *testing.T) {
	sink := &recordingSink{}
	g := &scriptedGame{id: "scripted", sounds: []core.Sound{core.SoundShoot, core.SoundKill}}
	m := NewModel(g, Deps{Sound: sink}, testConfig())

	update(t, m, tick(m, time.Now()))

	if len(sink.played) != 2 || sink.played[0] != core.SoundShoot || sink.played[1] != core.SoundKill {
		t.Errorf("played = %v", sink.played)
	}
}

func TestModelRecordsFinishedRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	g := &scriptedGame{id: "scripted", score: 12}
	m := NewModel(g, Deps{Store: store}, testConfig())

	now := time.Now()
	m = update(t, m, tick(m, now))
	g.phase = core.PhaseWon
	m = update(t, m, tick(m, now.Add(time.Millisecond)))
	m = update(t, m, tick(m, now.Add(2*time.Millisecond)))

	runs, err := store.TopRuns("scripted", 10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(runs))
	}
	if runs[0].Outcome != storage.OutcomeWon || runs[0].Score != 12 || runs[0].Kills != 3 {
		t.Errorf("run = %+v", runs[0])
	}

	// A restart arms recording again.
	m = update(t, m, runeKey("r"))
	m = update(t, m, tick(m, now.Add(3*time.Millisecond)))
	g.phase = core.PhaseGameOver
	update(t, m, tick(m, now.Add(4*time.Millisecond)))

	runs, _ = store.TopRuns("scripted", 10)
	if len(runs) != 2 {
		t.Errorf("runs after restart = %d, want 2", len(runs))
	}
}

func TestRunRecord(t *testing.T) {
	tests := []struct {
		name  string
		phase core.Phase
		want  string
	}{
		{"won", core.PhaseWon, storage.OutcomeWon},
		{"lost", core.PhaseGameOver, storage.OutcomeLost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := core.GameState{Score: 7, Phase: tt.phase, GameOver: true, Elapsed: 1.25}
			run := RunRecord("antidote", state, core.HUD{Kills: 4})

			if run.Outcome != tt.want {
				t.Errorf("Outcome = %q, want %q", run.Outcome, tt.want)
			}
			if run.Variant != "antidote" || run.Score != 7 || run.Kills != 4 {
				t.Errorf("run = %+v", run)
			}
			if run.Duration != 1250*time.Millisecond {
				t.Errorf("Duration = %v, want 1.25s", run.Duration)
			}
		})
	}
}

func TestModelBackOnlyWhenAllowed(t *testing.T) {
	g := &scriptedGame{id: "scripted"}

	m := NewModel(g, Deps{}, testConfig())
	m = update(t, m, runeKey("b"))
	if m.BackToMenu() {
		t.Error("standalone game went back to menu")
	}

	m.allowBack = true
	m = update(t, m, runeKey("b"))
	if !m.BackToMenu() {
		t.Error("session game did not go back to menu")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&scriptedGame{id: "scripted"}, Deps{}, testConfig())
	m = update(t, m, runeKey("q"))

	if !m.IsQuitting() {
		t.Error("q did not quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}
