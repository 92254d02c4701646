package config

import "fmt"

// Variant is a named rule set layered over the base configuration.
type Variant struct {
	ID          string
	Title       string
	Description string
	apply       func(cfg *GameConfig)
}

// Apply applies the variant's overrides to cfg.
func (v Variant) Apply(cfg *GameConfig) {
	if v.apply != nil {
		v.apply(cfg)
	}
}

// DefaultVariant is the canonical rule set.
const DefaultVariant = "antidote"

var variants = []Variant{
	{
		ID:          "antidote",
		Title:       "Antidote Run",
		Description: "Shoot monsters, jump the invincible ones, grab the antidote to win",
	},
	{
		ID:          "bounty",
		Title:       "Bounty Hunter",
		Description: "Every kill pays double; the antidote still ends the run",
		apply: func(cfg *GameConfig) {
			cfg.Scoring.KillReward = 2
		},
	},
	{
		ID:          "survival",
		Title:       "Survival",
		Description: "No antidote: last as long as you can",
		apply: func(cfg *GameConfig) {
			cfg.Antidote.Enabled = false
			cfg.Physics.JumpImpulse = -600
		},
	},
	{
		ID:          "classic",
		Title:       "Classic Dodge",
		Description: "The first prototype: nothing can be killed, only jumped",
		apply: func(cfg *GameConfig) {
			cfg.Monsters.KillableChance = 0
			cfg.Antidote.Enabled = false
			cfg.Physics.JumpImpulse = -500
		},
	},
}

// Variants returns all variants in display order.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// LookupVariant finds a variant by ID.
func LookupVariant(id string) (Variant, error) {
	for _, v := range variants {
		if v.ID == id {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("config: unknown variant %q", id)
}
