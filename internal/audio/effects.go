package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/antidote-run/internal/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is an oscillator whose frequency glides linearly from one value to
// another over its duration.
type tone struct {
	from, to float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewTone creates a gliding oscillator. from == to gives a steady pitch.
func NewTone(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	t := &tone{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
	if wave == WaveNoise {
		t.rng = rand.New(rand.NewSource(int64(from*1000 + to)))
	}
	return t
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.from + (o.to-o.from)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// envelope applies a linear attack and release to a finite stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with attack/release shaping over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if remaining := e.totalSamples - e.position; e.releaseSamples > 0 && remaining < e.releaseSamples {
			vol = float64(remaining) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// note is one shaped segment of a sound effect.
type note struct {
	from, to float64
	length   time.Duration
	wave     WaveType
}

// patches describes every sound effect as a sequence of notes.
var patches = map[core.Sound][]note{
	core.SoundShoot: {
		{from: 1200, to: 500, length: 70 * time.Millisecond, wave: WaveSquare},
	},
	core.SoundKill: {
		{from: 0, to: 0, length: 60 * time.Millisecond, wave: WaveNoise},
		{from: 300, to: 90, length: 140 * time.Millisecond, wave: WaveSaw},
	},
	core.SoundHurt: {
		{from: 160, to: 110, length: 220 * time.Millisecond, wave: WaveSaw},
	},
	core.SoundDodge: {
		{from: 520, to: 1040, length: 150 * time.Millisecond, wave: WaveSine},
	},
	core.SoundPickup: {
		{from: 660, to: 660, length: 80 * time.Millisecond, wave: WaveSine},
		{from: 880, to: 880, length: 80 * time.Millisecond, wave: WaveSine},
		{from: 1320, to: 1320, length: 160 * time.Millisecond, wave: WaveSine},
	},
	core.SoundGameOver: {
		{from: 440, to: 330, length: 200 * time.Millisecond, wave: WaveSquare},
		{from: 330, to: 220, length: 200 * time.Millisecond, wave: WaveSquare},
		{from: 220, to: 110, length: 400 * time.Millisecond, wave: WaveSquare},
	},
}

// Build creates a fresh, finite streamer for s at the given volume
// (-1 quieter, 0 unchanged, in the natural log base of effects.Volume).
// Returns nil for unknown sounds.
func Build(s core.Sound, volume float64, rate beep.SampleRate) beep.Streamer {
	notes, ok := patches[s]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		osc := NewTone(n.from, n.to, n.length, n.wave, rate)
		parts = append(parts, NewEnvelope(osc, n.length, 5*time.Millisecond, n.length/3, rate))
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   volume,
	}
}

// Duration returns the total length of a sound effect.
func Duration(s core.Sound) time.Duration {
	var total time.Duration
	for _, n := range patches[s] {
		total += n.length
	}
	return total
}
