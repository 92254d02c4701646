package game

import "github.com/vovakirdan/antidote-run/internal/core"

// Bullet travels right at constant speed.
type Bullet struct {
	Bounds core.Rect
	Speed  float64
}

// Update advances the bullet.
func (b *Bullet) Update(dt float64) {
	b.Bounds = b.Bounds.Translate(b.Speed*dt, 0)
}

// OffScreen reports whether the bullet has reached the right boundary.
func (b Bullet) OffScreen(screenW float64) bool {
	return b.Bounds.X >= screenW
}

// Monster walks left along the ground.
type Monster struct {
	Bounds   core.Rect
	Speed    float64
	Health   int
	Killable bool

	jumpedOver bool // player has been above it without touching
	dodged     bool // dodge bonus already paid
}

// Update advances the monster.
func (m *Monster) Update(dt float64) {
	m.Bounds = m.Bounds.Translate(-m.Speed*dt, 0)
}

// OffScreen reports whether the monster has fully left through the left edge.
func (m Monster) OffScreen() bool {
	return m.Bounds.X < -m.Bounds.W
}

// Particle is purely cosmetic background drift.
type Particle struct {
	X, Y   float64 // Center
	Radius float64
	Speed  float64
}

// Update advances the particle.
func (p *Particle) Update(dt float64) {
	p.X -= p.Speed * dt
}

// OffScreen reports whether the particle has fully left through the left edge.
func (p Particle) OffScreen() bool {
	return p.X+p.Radius < 0
}

// Antidote is the win pickup. At most one exists at a time.
type Antidote struct {
	Bounds core.Rect
	Speed  float64
}

// Update advances the antidote.
func (a *Antidote) Update(dt float64) {
	a.Bounds = a.Bounds.Translate(-a.Speed*dt, 0)
}

// OffScreen reports whether the antidote has fully left through the left edge.
func (a Antidote) OffScreen() bool {
	return a.Bounds.X < -a.Bounds.W
}
