package config

import (
	_ "embed"
)

//go:embed defaults/antidote.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the canonical configuration.
// It mirrors defaults/antidote.yaml and is used if the embedded file cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Screen: ScreenConfig{
			Width:        800,
			Height:       600,
			GroundHeight: 100,
		},
		Physics: PhysicsConfig{
			Gravity:     1000,
			JumpImpulse: -500,
			MoveSpeed:   250,
			MaxDelta:    0.1,
		},
		Player: PlayerConfig{
			X:         50,
			Width:     50,
			Height:    50,
			MaxHits:   3,
			MaxHealth: 100,
		},
		Bullet: BulletConfig{
			Width:  10,
			Height: 5,
			Speed:  500,
		},
		Monsters: MonsterConfig{
			Width:          50,
			Height:         50,
			MinSpeed:       100,
			MaxSpeed:       300,
			MinHealth:      1,
			MaxHealth:      5,
			KillableChance: 0.5,
			MinInterval:    1,
			MaxInterval:    3,
		},
		Particles: ParticleConfig{
			Radius:      5,
			MinSpeed:    150,
			MaxSpeed:    250,
			MinY:        100,
			MaxY:        400,
			MinInterval: 0.1,
			MaxInterval: 0.3,
		},
		Antidote: AntidoteConfig{
			Enabled:        true,
			Width:          20,
			Height:         20,
			Speed:          150,
			ScoreThreshold: 10,
			MinY:           360,
			MaxY:           470,
			RespawnDelay:   3,
		},
		Scoring: ScoringConfig{
			KillReward: 1,
			DodgeBonus: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				IntervalReduction: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGameYAML
}
