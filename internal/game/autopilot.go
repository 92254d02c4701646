package game

import "github.com/vovakirdan/antidote-run/internal/core"

// jumpLead is how far ahead, in seconds of monster travel, the autopilot
// starts a jump over an unkillable monster.
const jumpLead = 0.3

// Autopilot plays the game without a human: it keeps shooting and jumps over
// monsters it cannot kill. It drives headless simulations.
type Autopilot struct {
	fireDown bool
}

// Next returns the input for the coming frame of g.
func (a *Autopilot) Next(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	if g.phase.Terminal() {
		return in
	}

	// Firing is edge-triggered, so the trigger is pulled every other frame.
	a.fireDown = !a.fireDown
	if a.fireDown {
		in.Set(core.ActionFire)
	}

	p := g.player.Bounds
	for _, m := range g.monsters {
		if m.Killable || m.Bounds.Right() <= p.X {
			continue
		}
		gap := m.Bounds.X - p.Right()
		if gap >= 0 && gap <= m.Speed*jumpLead {
			in.Set(core.ActionJump)
			break
		}
	}

	if g.antidote != nil {
		cx, _ := g.antidote.Bounds.Center()
		switch {
		case cx < p.X:
			in.Set(core.ActionLeft)
		case cx > p.Right():
			in.Set(core.ActionRight)
		}
	}

	return in
}

// Simulate runs g for the given number of seconds at a fixed step, feeding
// it from the autopilot when one is given and idle input otherwise. It stops
// early when the run ends and returns the final state.
func Simulate(g *Game, seconds, step float64, pilot *Autopilot) core.GameState {
	if step <= 0 {
		step = 1.0 / 60
	}
	for t := 0.0; t < seconds; t += step {
		in := core.NewInputFrame()
		if pilot != nil {
			in = pilot.Next(g)
		}
		if g.Step(in, step).State.GameOver {
			break
		}
	}
	return g.State()
}
