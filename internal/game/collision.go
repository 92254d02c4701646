package game

import "github.com/vovakirdan/antidote-run/internal/core"

// resolveCollisions runs once per frame after every entity has moved.
//
// Per monster, in order:
//  1. touching the player: the player takes a hit and the monster is removed,
//     whatever its killability (bullet damage is skipped that frame);
//  2. killable: every overlapping bullet is consumed and deals one damage,
//     a monster at zero health pays the kill reward and is removed;
//  3. unkillable: the dodge bonus is tracked.
//
// Monsters past the left edge are removed in the same pass. The antidote is
// checked last and only if the player survived the monster pass.
func (g *Game) resolveCollisions() {
	player := g.player
	damage := g.cfg.HitDamage()
	maxHits := g.cfg.Player.MaxHits

	alive := g.monsters[:0]
	for _, m := range g.monsters {
		if player.CheckCollision(m.Bounds) {
			if !player.Dead(maxHits) {
				player.Hit(damage)
				g.emit(core.SoundHurt)
			}
			continue
		}

		if m.Killable {
			if g.shootMonster(&m) {
				g.score += g.cfg.Scoring.KillReward
				g.kills++
				g.emit(core.SoundKill)
				continue
			}
		} else {
			g.trackDodge(&m)
		}

		if m.OffScreen() {
			continue
		}
		alive = append(alive, m)
	}
	g.monsters = alive

	if player.Dead(maxHits) {
		return
	}

	if g.antidote != nil {
		switch {
		case player.CheckCollision(g.antidote.Bounds):
			g.antidote = nil
			g.phase = core.PhaseWon
			g.emit(core.SoundPickup)
		case g.antidote.OffScreen():
			g.antidote = nil
			g.spawner.AntidoteMissed()
		}
	}
}

// shootMonster applies every overlapping bullet to m and removes those
// bullets. Bullets stop being consumed once the monster is dead.
// Returns true if the monster died.
func (g *Game) shootMonster(m *Monster) bool {
	bullets := g.gun.bullets
	remaining := bullets[:0]
	for _, b := range bullets {
		if m.Health > 0 && core.Intersects(b.Bounds, m.Bounds) {
			m.Health--
			continue
		}
		remaining = append(remaining, b)
	}
	g.gun.bullets = remaining
	return m.Health <= 0
}

// trackDodge pays the dodge bonus once per unkillable monster: the player
// must first be directly above it (horizontal spans overlap, no contact) and
// the bonus is paid on the first frame the monster is fully behind the player.
func (g *Game) trackDodge(m *Monster) {
	if m.dodged {
		return
	}
	p := g.player.Bounds

	if p.OverlapsX(m.Bounds) {
		if p.Bottom() <= m.Bounds.Y {
			m.jumpedOver = true
		}
		return
	}

	if m.jumpedOver && m.Bounds.Right() <= p.X {
		m.dodged = true
		g.score += g.cfg.Scoring.DodgeBonus
		g.dodges++
		g.emit(core.SoundDodge)
	}
}
