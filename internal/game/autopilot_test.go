package game

import (
	"testing"

	"github.com/vovakirdan/antidote-run/internal/config"
	"github.com/vovakirdan/antidote-run/internal/core"
)

func TestAutopilotPulsesFire(t *testing.T) {
	g := newTestGame(t, quietConfig())
	var a Autopilot

	first := a.Next(g)
	second := a.Next(g)

	if !first.Has(core.ActionFire) || second.Has(core.ActionFire) {
		t.Errorf("fire = %v,%v, want true,false", first.Has(core.ActionFire), second.Has(core.ActionFire))
	}
}

func TestAutopilotJumpsUnkillable(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		killable bool
		want     bool
	}{
		{"unkillable close", 160, false, true},
		{"unkillable far", 600, false, false},
		{"killable close", 160, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, quietConfig())
			m := monsterAt(tt.x, g.cfg.GroundTop()-50, 1, tt.killable)
			m.Speed = 200
			g.monsters = append(g.monsters, m)

			var a Autopilot
			if got := a.Next(g).Has(core.ActionJump); got != tt.want {
				t.Errorf("jump = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAutopilotIdleWhenOver(t *testing.T) {
	g := newTestGame(t, quietConfig())
	g.phase = core.PhaseGameOver

	var a Autopilot
	if in := a.Next(g); in.Has(core.ActionFire) || in.Has(core.ActionJump) {
		t.Error("autopilot acted after the run ended")
	}
}

func TestSimulateDeterministic(t *testing.T) {
	run := func() (core.GameState, uint64) {
		g := NewWithConfig(config.DefaultVariant, config.DefaultGameConfig())
		g.Reset(core.RuntimeConfig{Seed: 7})
		state := Simulate(g, 20, 1.0/60, &Autopilot{})
		snap := g.Snapshot()
		return state, snap.Hash()
	}

	s1, h1 := run()
	s2, h2 := run()
	if s1 != s2 || h1 != h2 {
		t.Errorf("simulations differ: %+v/%d vs %+v/%d", s1, h1, s2, h2)
	}
	if s1.Elapsed <= 0 {
		t.Error("simulation did not advance")
	}
}
