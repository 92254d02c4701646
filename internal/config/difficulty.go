package config

import "math"

// minIntervalFactor keeps spawn intervals from collapsing to zero.
const minIntervalFactor = 0.2

// DifficultyManager calculates dynamic spawn parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// Level returns the current difficulty level (0.0 to 1.0) based on score or elapsed seconds.
func (d *DifficultyManager) Level(score int, elapsed float64) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = elapsed / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpeedFactor returns the multiplier applied to monster speeds.
// Returns exactly 1 while scaling is disabled.
func (d *DifficultyManager) SpeedFactor(score int, elapsed float64) float64 {
	if !d.cfg.Enabled {
		return 1
	}
	return 1.0 + d.Level(score, elapsed)*d.cfg.Scaling.SpeedMultiplier
}

// Interval shortens a spawn interval as difficulty rises.
func (d *DifficultyManager) Interval(base float64, score int, elapsed float64) float64 {
	if !d.cfg.Enabled {
		return base
	}
	factor := 1.0 - d.Level(score, elapsed)*d.cfg.Scaling.IntervalReduction
	return base * math.Max(factor, minIntervalFactor)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
