package game

import "math"

// Snapshot is a flat copy of the simulation state for determinism checks.
// Entities are flattened in slice order, one float per field.
type Snapshot struct {
	Ticks   uint64
	Elapsed float64
	Score   int
	Kills   int
	Dodges  int
	Phase   int
	Paused  bool
	Seed    int64

	PlayerX, PlayerY, PlayerVelY float64
	HitCount                     int
	Health                       float64

	// Each monster is 6 floats: X, Y, Speed, Health, Killable, JumpedOver
	MonsterData []float64
	// Each bullet is 2 floats: X, Y
	BulletData []float64
	// Each particle is 3 floats: X, Y, Speed
	ParticleData []float64
	// Antidote X, Y; empty when none is alive
	AntidoteData []float64
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	monsters := make([]float64, 0, len(g.monsters)*6)
	for _, m := range g.monsters {
		monsters = append(monsters, m.Bounds.X, m.Bounds.Y, m.Speed, float64(m.Health), boolF(m.Killable), boolF(m.jumpedOver))
	}

	bullets := make([]float64, 0, len(g.gun.bullets)*2)
	for _, b := range g.gun.bullets {
		bullets = append(bullets, b.Bounds.X, b.Bounds.Y)
	}

	particles := make([]float64, 0, len(g.particles)*3)
	for _, p := range g.particles {
		particles = append(particles, p.X, p.Y, p.Speed)
	}

	var antidote []float64
	if g.antidote != nil {
		antidote = []float64{g.antidote.Bounds.X, g.antidote.Bounds.Y}
	}

	return Snapshot{
		Ticks:   g.ticks,
		Elapsed: g.elapsed,
		Score:   g.score,
		Kills:   g.kills,
		Dodges:  g.dodges,
		Phase:   int(g.phase),
		Paused:  g.paused,
		Seed:    g.seed,

		PlayerX:    g.player.Bounds.X,
		PlayerY:    g.player.Bounds.Y,
		PlayerVelY: g.player.VelY,
		HitCount:   g.player.HitCount,
		Health:     g.player.Health,

		MonsterData:  monsters,
		BulletData:   bullets,
		ParticleData: particles,
		AntidoteData: antidote,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Ticks
	h = h*31 + math.Float64bits(snap.Elapsed)
	h = h*31 + uint64(snap.Score)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Dodges) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)  //#nosec G115 -- hash computation
	h = h*31 + uint64(boolF(snap.Paused))
	h = h*31 + uint64(snap.Seed) //#nosec G115 -- hash computation

	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.PlayerVelY)
	h = h*31 + uint64(snap.HitCount) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Health)

	for _, data := range [][]float64{snap.MonsterData, snap.BulletData, snap.ParticleData, snap.AntidoteData} {
		h = h*31 + uint64(len(data))
		for _, v := range data {
			h = h*31 + math.Float64bits(v)
		}
	}

	return h
}

func boolF(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
