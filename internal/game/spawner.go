package game

import (
	"math/rand"

	"github.com/vovakirdan/antidote-run/internal/config"
	"github.com/vovakirdan/antidote-run/internal/core"
)

// spawnTimer accumulates elapsed time until it reaches a threshold that is
// redrawn after every firing.
type spawnTimer struct {
	elapsed   float64
	threshold float64
}

// advance adds dt and reports whether the timer fired. A fired timer restarts
// from zero, so intervals are measured from the previous spawn.
func (t *spawnTimer) advance(dt float64) bool {
	t.elapsed += dt
	if t.elapsed < t.threshold {
		return false
	}
	t.elapsed = 0
	return true
}

// Spawns holds the entities created during one tick.
type Spawns struct {
	Monsters  []Monster
	Particles []Particle
	Antidote  *Antidote
}

// Spawner decides when and with what parameters new entities appear.
type Spawner struct {
	rng        *rand.Rand
	cfg        *config.GameConfig
	difficulty *config.DifficultyManager

	monsterTimer  spawnTimer
	particleTimer spawnTimer

	antidoteCooldown float64 // seconds left before an antidote may appear again
}

// NewSpawner creates a spawner with its own seeded random source.
func NewSpawner(seed int64, cfg *config.GameConfig, diff *config.DifficultyManager) *Spawner {
	s := &Spawner{
		cfg:        cfg,
		difficulty: diff,
	}
	s.Reset(seed)
	return s
}

// Reset reseeds the random source and restarts every timer.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.monsterTimer = spawnTimer{threshold: s.monsterInterval(0, 0)}
	s.particleTimer = spawnTimer{threshold: s.uniform(s.cfg.Particles.MinInterval, s.cfg.Particles.MaxInterval)}
	s.antidoteCooldown = 0
}

// Tick advances the timers and returns anything that spawned.
func (s *Spawner) Tick(dt float64, score int, elapsed float64, antidoteAlive bool) Spawns {
	var out Spawns

	if s.monsterTimer.advance(dt) {
		out.Monsters = append(out.Monsters, s.newMonster(score, elapsed))
		s.monsterTimer.threshold = s.monsterInterval(score, elapsed)
	}

	if s.particleTimer.advance(dt) {
		out.Particles = append(out.Particles, s.newParticle())
		s.particleTimer.threshold = s.uniform(s.cfg.Particles.MinInterval, s.cfg.Particles.MaxInterval)
	}

	if s.cfg.Antidote.Enabled && !antidoteAlive {
		if s.antidoteCooldown > 0 {
			s.antidoteCooldown -= dt
		}
		if score > s.cfg.Antidote.ScoreThreshold && s.antidoteCooldown <= 0 {
			a := s.newAntidote()
			out.Antidote = &a
		}
	}

	return out
}

// AntidoteMissed starts the respawn delay after an antidote left the screen.
func (s *Spawner) AntidoteMissed() {
	s.antidoteCooldown = s.cfg.Antidote.RespawnDelay
}

func (s *Spawner) newMonster(score int, elapsed float64) Monster {
	mc := s.cfg.Monsters
	speed := s.uniform(mc.MinSpeed, mc.MaxSpeed) * s.difficulty.SpeedFactor(score, elapsed)
	health := s.intRange(mc.MinHealth, mc.MaxHealth)
	killable := s.rng.Float64() < mc.KillableChance

	return Monster{
		Bounds:   core.NewRect(s.cfg.Screen.Width, s.cfg.GroundTop()-mc.Height, mc.Width, mc.Height),
		Speed:    speed,
		Health:   health,
		Killable: killable,
	}
}

func (s *Spawner) newParticle() Particle {
	pc := s.cfg.Particles
	return Particle{
		X:      s.cfg.Screen.Width,
		Y:      s.uniform(pc.MinY, pc.MaxY),
		Radius: pc.Radius,
		Speed:  s.uniform(pc.MinSpeed, pc.MaxSpeed),
	}
}

func (s *Spawner) newAntidote() Antidote {
	ac := s.cfg.Antidote
	return Antidote{
		Bounds: core.NewRect(s.cfg.Screen.Width, s.uniform(ac.MinY, ac.MaxY), ac.Width, ac.Height),
		Speed:  ac.Speed,
	}
}

func (s *Spawner) monsterInterval(score int, elapsed float64) float64 {
	base := s.uniform(s.cfg.Monsters.MinInterval, s.cfg.Monsters.MaxInterval)
	return s.difficulty.Interval(base, score, elapsed)
}

// uniform draws from [min, max).
func (s *Spawner) uniform(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}

// intRange draws from [min, max].
func (s *Spawner) intRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}
