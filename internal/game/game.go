// Package game implements the Antidote Run simulation: a side-scrolling
// shooter where the player jumps and fires at oncoming monsters until it
// collects the antidote or runs out of health.
//
// The package is pure logic. Positions live in an 800x600 virtual screen and
// advance by wall-clock seconds; the platform supplies input frames and dt,
// and consumes draw requests, HUD values and sounds.
package game

import (
	"fmt"

	"github.com/vovakirdan/antidote-run/internal/config"
	"github.com/vovakirdan/antidote-run/internal/core"
	"github.com/vovakirdan/antidote-run/internal/registry"
)

// Game is the frame controller for one run.
type Game struct {
	variant config.Variant
	cfg     config.GameConfig
	cfgErr  error
	fixed   bool // cfg was supplied by the caller, never reload it

	runtime    core.RuntimeConfig
	seed       int64
	difficulty *config.DifficultyManager

	ground    core.Rect
	player    *Player
	gun       *Gun
	fire      core.Trigger
	spawner   *Spawner
	monsters  []Monster
	particles []Particle
	antidote  *Antidote

	score   int
	kills   int
	dodges  int
	phase   core.Phase
	paused  bool
	elapsed float64
	ticks   uint64

	sounds []core.Sound
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config file's settings.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a game for the given variant. The configuration is loaded on
// Reset. Unknown variants fall back to the default one.
func New(variantID string) *Game {
	v, err := config.LookupVariant(variantID)
	if err != nil {
		v, _ = config.LookupVariant(config.DefaultVariant)
	}
	return &Game{variant: v}
}

// NewWithConfig creates a game that always uses cfg as is.
func NewWithConfig(variantID string, cfg config.GameConfig) *Game {
	g := New(variantID)
	g.cfg = cfg
	g.fixed = true
	return g
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the variant's display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Config returns the configuration of the current run.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

// ConfigError returns the error from the last configuration load, if any.
// The game still runs on defaults when it is non-nil.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixed {
		cfg, err := config.LoadVariant(configPath, g.variant.ID, difficultyPreset)
		g.cfg = cfg
		g.cfgErr = err
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.gun = NewGun(g.cfg.Bullet.Width, g.cfg.Bullet.Height, g.cfg.Bullet.Speed, g.cfg.Screen.Width)
	g.start(runtime.Seed)
}

// start puts every entity back to its construction state. The gun is
// built by Reset, since its sizes come from the loaded config.
func (g *Game) start(seed int64) {
	cfg := &g.cfg
	g.seed = seed

	g.ground = core.NewRect(0, cfg.GroundTop(), cfg.Screen.Width, cfg.Screen.GroundHeight)
	g.player = NewPlayer(
		cfg.Player.X, cfg.Player.Width, cfg.Player.Height,
		cfg.GroundTop(), cfg.Player.MaxHealth,
		cfg.Physics.Gravity, cfg.Physics.JumpImpulse,
	)

	g.gun.Reset()
	g.fire.Reset()
	g.spawner = NewSpawner(seed, cfg, g.difficulty)

	g.monsters = g.monsters[:0]
	g.particles = g.particles[:0]
	g.antidote = nil

	g.score = 0
	g.kills = 0
	g.dodges = 0
	g.phase = core.PhaseRunning
	g.paused = false
	g.elapsed = 0
	g.ticks = 0
	g.sounds = nil
}

// nextSeed derives the seed for an in-game restart so that consecutive runs
// differ but a recorded session stays reproducible.
func nextSeed(seed int64) int64 {
	return seed*6364136223846793005 + 1442695040888963407
}

// Step advances the game by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	g.sounds = nil
	dt = core.ClampF(dt, 0, g.cfg.Physics.MaxDelta)

	if g.phase.Terminal() {
		if in.Has(core.ActionRestart) {
			g.start(nextSeed(g.seed))
		}
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		g.fire.Update(in.Has(core.ActionFire))
		return g.result()
	}

	g.ticks++
	g.elapsed += dt

	g.handleInput(in, dt)
	g.advance(dt)
	g.spawn(dt)
	g.resolveCollisions()

	if g.player.Dead(g.cfg.Player.MaxHits) {
		g.phase = core.PhaseGameOver
		g.emit(core.SoundGameOver)
	}

	return g.result()
}

func (g *Game) handleInput(in core.InputFrame, dt float64) {
	p := g.player
	maxX := g.cfg.Screen.Width - p.Bounds.W
	step := g.cfg.Physics.MoveSpeed * dt

	if in.Has(core.ActionLeft) {
		p.Move(-step, 0, maxX)
	}
	if in.Has(core.ActionRight) {
		p.Move(step, 0, maxX)
	}
	if in.Has(core.ActionJump) {
		p.Jump()
	}

	if g.fire.Update(in.Has(core.ActionFire)) {
		y := p.Bounds.Y + (p.Bounds.H-g.cfg.Bullet.Height)/2
		g.gun.Shoot(p.Bounds.Right(), y)
		g.emit(core.SoundShoot)
	}
}

// advance moves every entity. Bullets and particles are pruned here;
// monsters and the antidote are pruned by the collision pass.
func (g *Game) advance(dt float64) {
	g.player.Update(dt, g.ground)
	g.gun.Update(dt)

	for i := range g.monsters {
		g.monsters[i].Update(dt)
	}

	valid := g.particles[:0]
	for _, p := range g.particles {
		p.Update(dt)
		if !p.OffScreen() {
			valid = append(valid, p)
		}
	}
	g.particles = valid

	if g.antidote != nil {
		g.antidote.Update(dt)
	}
}

func (g *Game) spawn(dt float64) {
	out := g.spawner.Tick(dt, g.score, g.elapsed, g.antidote != nil)
	g.monsters = append(g.monsters, out.Monsters...)
	g.particles = append(g.particles, out.Particles...)
	if out.Antidote != nil {
		g.antidote = out.Antidote
	}
}

func (g *Game) emit(s core.Sound) {
	g.sounds = append(g.sounds, s)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Sounds: g.sounds}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Phase:    g.phase,
		GameOver: g.phase.Terminal(),
		Paused:   g.paused,
		Elapsed:  g.elapsed,
	}
}

// HUD returns the values for the heads-up display.
func (g *Game) HUD() core.HUD {
	pct := 0.0
	if g.cfg.Player.MaxHealth > 0 {
		pct = g.player.Health / g.cfg.Player.MaxHealth * 100
	}
	return core.HUD{
		Score:     g.score,
		HealthPct: pct,
		Hits:      g.player.HitCount,
		MaxHits:   g.cfg.Player.MaxHits,
		Kills:     g.kills,
		Elapsed:   g.elapsed,
		Phase:     g.phase,
		Paused:    g.paused,
		Antidote:  g.antidote != nil,
	}
}

func init() {
	for _, v := range config.Variants() {
		id := v.ID
		registry.Register(id, func() registry.Game {
			return New(id)
		})
	}
}

// String implements fmt.Stringer for log lines.
func (g *Game) String() string {
	return fmt.Sprintf("%s score=%d phase=%s t=%.1fs", g.variant.ID, g.score, g.phase, g.elapsed)
}
