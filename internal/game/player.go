package game

import (
	"math"

	"github.com/vovakirdan/antidote-run/internal/core"
)

// Player is the controllable character. It persists for the whole run and is
// only rebuilt on reset.
type Player struct {
	Bounds   core.Rect
	VelY     float64 // Vertical velocity, px/s (negative = up)
	Jumping  bool    // Airborne since the last jump
	HitCount int
	Health   float64

	gravity     float64
	jumpImpulse float64
}

// NewPlayer creates a player standing on the ground at x.
func NewPlayer(x, w, h, groundTop, health, gravity, jumpImpulse float64) *Player {
	return &Player{
		Bounds:      core.NewRect(x, groundTop-h, w, h),
		Health:      health,
		gravity:     gravity,
		jumpImpulse: jumpImpulse,
	}
}

// ApplyGravity accelerates the player downward.
func (p *Player) ApplyGravity(dt float64) {
	p.VelY += p.gravity * dt
}

// Jump launches the player if it is not already airborne.
// Returns false when the jump was ignored.
func (p *Player) Jump() bool {
	if p.Jumping {
		return false
	}
	p.VelY = p.jumpImpulse
	p.Jumping = true
	return true
}

// Update integrates vertical motion and resolves landing on the ground.
// Landing is the only ground rule: the bottom edge snaps to the ground's top.
func (p *Player) Update(dt float64, ground core.Rect) {
	p.ApplyGravity(dt)
	p.Bounds.Y += p.VelY * dt

	if p.Bounds.Intersects(ground) {
		p.Bounds.Y = ground.Y - p.Bounds.H
		p.VelY = 0
		p.Jumping = false
	}
}

// Move translates the player horizontally, keeping it within [minX, maxX].
func (p *Player) Move(dx, minX, maxX float64) {
	p.Bounds.X = core.ClampF(p.Bounds.X+dx, minX, maxX)
}

// CheckCollision reports whether the player overlaps other.
func (p *Player) CheckCollision(other core.Rect) bool {
	return core.Intersects(p.Bounds, other)
}

// Hit registers one monster contact.
func (p *Player) Hit(damage float64) {
	p.HitCount++
	p.Health = math.Max(p.Health-damage, 0)
}

// Dead reports whether the player has run out of hits or health.
func (p *Player) Dead(maxHits int) bool {
	return (maxHits > 0 && p.HitCount >= maxHits) || p.Health <= 0
}
