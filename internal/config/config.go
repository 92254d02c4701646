// Package config provides YAML-based game configuration loading, variant
// presets and difficulty management.
package config

// GameConfig contains all tuning for a run. Units are virtual pixels and seconds.
type GameConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Monsters   MonsterConfig    `yaml:"monsters"`
	Particles  ParticleConfig   `yaml:"particles"`
	Antidote   AntidoteConfig   `yaml:"antidote"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ScreenConfig defines the fixed virtual play area.
type ScreenConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// PhysicsConfig defines player kinematics and frame timing.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // px/s², applied every frame
	JumpImpulse float64 `yaml:"jump_impulse"` // px/s, negative is up
	MoveSpeed   float64 `yaml:"move_speed"`   // px/s horizontal translation
	MaxDelta    float64 `yaml:"max_delta"`    // upper clamp for dt in seconds
}

// PlayerConfig defines the player body and damage model.
type PlayerConfig struct {
	X         float64 `yaml:"x"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MaxHits   int     `yaml:"max_hits"`
	MaxHealth float64 `yaml:"max_health"`
}

// BulletConfig defines projectile size and speed.
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// MonsterConfig defines monster sizes and the distributions monsters are drawn from.
type MonsterConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	MinSpeed       float64 `yaml:"min_speed"`
	MaxSpeed       float64 `yaml:"max_speed"`
	MinHealth      int     `yaml:"min_health"`
	MaxHealth      int     `yaml:"max_health"`
	KillableChance float64 `yaml:"killable_chance"` // Bernoulli p for canBeKilled
	MinInterval    float64 `yaml:"min_interval"`
	MaxInterval    float64 `yaml:"max_interval"`
}

// ParticleConfig defines the cosmetic particle stream.
type ParticleConfig struct {
	Radius      float64 `yaml:"radius"`
	MinSpeed    float64 `yaml:"min_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	MinY        float64 `yaml:"min_y"`
	MaxY        float64 `yaml:"max_y"`
	MinInterval float64 `yaml:"min_interval"`
	MaxInterval float64 `yaml:"max_interval"`
}

// AntidoteConfig defines the win-condition pickup.
type AntidoteConfig struct {
	Enabled        bool    `yaml:"enabled"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`
	ScoreThreshold int     `yaml:"score_threshold"` // spawns once score exceeds this
	MinY           float64 `yaml:"min_y"`
	MaxY           float64 `yaml:"max_y"`
	RespawnDelay   float64 `yaml:"respawn_delay"` // wait after a missed antidote
}

// ScoringConfig defines score rewards.
type ScoringConfig struct {
	KillReward int `yaml:"kill_reward"`
	DodgeBonus int `yaml:"dodge_bonus"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Added to monster speed factor at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction removed from spawn intervals at max difficulty
}

// GroundTop returns the y-coordinate of the ground's top edge.
func (c GameConfig) GroundTop() float64 {
	return c.Screen.Height - c.Screen.GroundHeight
}

// HitDamage returns the health removed per monster contact.
func (c GameConfig) HitDamage() float64 {
	if c.Player.MaxHits <= 0 {
		return c.Player.MaxHealth
	}
	return c.Player.MaxHealth / float64(c.Player.MaxHits)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset keeps the file's settings.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
