package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/SrWilson89/doom/component"
	"github.com/SrWilson89/doom/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a wave of the given shape lasting duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
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
			val = o.rng.Float64()*2 - 1
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

// envelope applies linear attack/release shaping and cuts the stream at its total length
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(0, total-att-rel),
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
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
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
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is a fixed-length sine from the beep generators, shaped by an envelope
func tone(rate beep.SampleRate, freq float64, duration, attack, release time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		// Frequency above Nyquist for this rate; fall back to the local oscillator
		return NewEnvelope(NewOscillator(freq, duration, WaveSine, rate), duration, attack, release, rate)
	}
	return NewEnvelope(beep.Take(rate.N(duration), sine), duration, attack, release, rate)
}

// CreateShootSound is a noise burst over a low square body
func CreateShootSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.ShootSoundDuration, WaveNoise, rate)
	body := NewOscillator(parameter.ShootSoundFreq, parameter.ShootSoundDuration, WaveSquare, rate)
	mixed := beep.Mix(newVolume(noise, 0.6), newVolume(body, 0.3))
	shaped := NewEnvelope(mixed, parameter.ShootSoundDuration, parameter.ShootSoundAttack, parameter.ShootSoundRelease, rate)

	return newVolume(shaped, cfg.CueVolumes[component.CueShoot]*cfg.MasterVolume)
}

// CreateHitSound is a low saw grunt played when the player takes damage
func CreateHitSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	saw := NewOscillator(parameter.HitSoundFreq, parameter.HitSoundDuration, WaveSaw, rate)
	sub := tone(rate, parameter.HitSoundFreq/2, parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease)
	shaped := NewEnvelope(saw, parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease, rate)
	mixed := beep.Mix(newVolume(shaped, 0.6), newVolume(sub, 0.4))

	return newVolume(mixed, cfg.CueVolumes[component.CueHit]*cfg.MasterVolume)
}

// CreatePowerupSound is a rising two-note chime
func CreatePowerupSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := tone(rate, parameter.PowerupSoundNote1Freq, parameter.PowerupSoundNote1Duration,
		parameter.PowerupSoundAttack, parameter.PowerupSoundNote1Release)
	n2 := tone(rate, parameter.PowerupSoundNote2Freq, parameter.PowerupSoundNote2Duration,
		parameter.PowerupSoundAttack, parameter.PowerupSoundNote2Release)

	return newVolume(beep.Seq(n1, n2), cfg.CueVolumes[component.CuePowerup]*cfg.MasterVolume)
}

// CueSound returns the streamer for cue, nil for an unknown cue
func CueSound(cue component.Cue, cfg *Config) beep.Streamer {
	switch cue {
	case component.CueShoot:
		return CreateShootSound(cfg)
	case component.CueHit:
		return CreateHitSound(cfg)
	case component.CuePowerup:
		return CreatePowerupSound(cfg)
	default:
		return nil
	}
}

// musicGenerator is an endless kick and bass loop
type musicGenerator struct {
	sr   beep.SampleRate
	pos  int
	beat int
	kick int
}

// NewMusicGenerator creates the background loop; it never ends on its own
func NewMusicGenerator(sr beep.SampleRate) beep.Streamer {
	return &musicGenerator{
		sr:   sr,
		beat: sr.N(parameter.MusicBeat),
		kick: sr.N(parameter.MusicKickTail),
	}
}

func (g *musicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.beat
		t := float64(beatPos) / float64(g.sr)

		kick := 0.0
		if beatPos < g.kick {
			env := 1.0 - float64(beatPos)/float64(g.kick)
			kick = 0.5 * env * math.Sin(2*math.Pi*50*(1+2*env)*t)
		}

		// Bass rises a fifth on every fourth beat
		freq := parameter.MusicBassFreq
		if (g.pos/g.beat)%4 == 3 {
			freq *= 1.5
		}
		bass := 0.2 * math.Sin(2*math.Pi*freq*float64(g.pos)/float64(g.sr))

		samples[i][0] = kick + bass
		samples[i][1] = kick + bass
		g.pos++
	}
	return len(samples), true
}

func (g *musicGenerator) Err() error { return nil }
