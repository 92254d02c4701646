package game

import "github.com/vovakirdan/antidote-run/internal/core"

// Gun owns the live bullets.
type Gun struct {
	bullets []Bullet
	width   float64
	height  float64
	speed   float64
	screenW float64
}

// NewGun creates an empty gun firing bullets of the given size and speed.
func NewGun(width, height, speed, screenW float64) *Gun {
	return &Gun{
		bullets: make([]Bullet, 0, 16),
		width:   width,
		height:  height,
		speed:   speed,
		screenW: screenW,
	}
}

// Shoot appends a bullet with its top-left corner at (x, y).
func (g *Gun) Shoot(x, y float64) {
	g.bullets = append(g.bullets, Bullet{
		Bounds: core.NewRect(x, y, g.width, g.height),
		Speed:  g.speed,
	})
}

// Update advances every bullet and drops the ones past the right edge.
// Surviving bullets keep their relative order.
func (g *Gun) Update(dt float64) {
	for i := range g.bullets {
		g.bullets[i].Update(dt)
	}

	valid := g.bullets[:0]
	for _, b := range g.bullets {
		if !b.OffScreen(g.screenW) {
			valid = append(valid, b)
		}
	}
	g.bullets = valid
}

// Bullets returns the live bullets.
func (g *Gun) Bullets() []Bullet {
	return g.bullets
}

// Reset removes all bullets.
func (g *Gun) Reset() {
	g.bullets = g.bullets[:0]
}
