package core

// Sound identifies a fire-and-forget sound effect.
type Sound int

const (
	SoundShoot Sound = iota
	SoundKill
	SoundHurt
	SoundDodge
	SoundPickup
	SoundGameOver
	soundCount
)

// String returns the sound name used in logs.
func (s Sound) String() string {
	switch s {
	case SoundShoot:
		return "shoot"
	case SoundKill:
		return "kill"
	case SoundHurt:
		return "hurt"
	case SoundDodge:
		return "dodge"
	case SoundPickup:
		return "pickup"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Sounds lists every defined sound.
func Sounds() []Sound {
	all := make([]Sound, 0, soundCount)
	for s := Sound(0); s < soundCount; s++ {
		all = append(all, s)
	}
	return all
}

// SoundSink plays sounds. Implementations must not block the caller.
type SoundSink interface {
	Play(s Sound)
}

// NopSink discards every sound.
type NopSink struct{}

// Play implements SoundSink.
func (NopSink) Play(Sound) {}
