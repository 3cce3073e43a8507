package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/kitty-run/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
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
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero volume is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateStartSound generates a rising noise sweep for a round start
func CreateStartSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, constants.StartSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, constants.StartSoundDuration, constants.StartSoundAttack, constants.StartSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundStart]*cfg.MasterVolume)
}

// CreatePickupSound generates a two-note chime for a collected pickup
func CreatePickupSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5 then E6
	n1 := NewOscillator(987.77, constants.PickupSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.PickupSoundNote1Duration, constants.PickupSoundAttack, constants.PickupSoundNote1Release, rate)

	n2 := NewOscillator(1318.51, constants.PickupSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.PickupSoundNote2Duration, constants.PickupSoundAttack, constants.PickupSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.EffectVolumes[SoundPickup]*cfg.MasterVolume)
}

// CreateGameOverSound generates a bell: A5 fundamental with an octave overtone
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := NewOscillator(880.0, constants.GameOverSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constants.GameOverSoundDuration, constants.GameOverSoundAttack, constants.GameOverSoundFundamentalRelease, rate)

	over := NewOscillator(1760.0, constants.GameOverSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constants.GameOverSoundDuration, constants.GameOverSoundAttack, constants.GameOverSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, cfg.EffectVolumes[SoundGameOver]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for soundType, nil when unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundStart:
		return CreateStartSound(cfg)
	case SoundPickup:
		return CreatePickupSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
