package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/SrWilson89/doom/component"
	"github.com/SrWilson89/doom/parameter"
)

// drain streams s to completion, returning the sample count and the peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = max(peak, math.Abs(buf[i][0]), math.Abs(buf[i][1]))
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
	t.Fatal("stream did not terminate")
	return 0, 0
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, rate)
		n, peak := drain(t, osc)
		if n != rate.N(50*time.Millisecond) {
			t.Errorf("wave %d: streamed %d samples, want %d", wave, n, rate.N(50*time.Millisecond))
		}
		if peak <= 0 || peak > 1 {
			t.Errorf("wave %d: peak %f out of (0, 1]", wave, peak)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", wave, osc.Err())
		}
	}
}

func TestOscillatorExhausted(t *testing.T) {
	osc := NewOscillator(440, time.Millisecond, WaveSine, beep.SampleRate(44100))
	drain(t, osc)

	n, ok := osc.Stream(make([][2]float64, 16))
	if n != 0 || ok {
		t.Errorf("exhausted oscillator returned (%d, %t)", n, ok)
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	square := NewOscillator(0, time.Second, WaveSquare, rate) // freq 0 holds +1
	env := NewEnvelope(square, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	buf := make([][2]float64, 200)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("envelope streamed %d samples, want 100", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", buf[0][0])
	}
	if buf[5][0] != 0.5 {
		t.Errorf("mid attack = %f, want 0.5", buf[5][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain = %f, want 1", buf[50][0])
	}
	if buf[90][0] != 0.5 {
		t.Errorf("mid release = %f, want 0.5", buf[90][0])
	}
}

func TestCueSounds(t *testing.T) {
	cfg := DefaultConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		cue  component.Cue
		want int
	}{
		{component.CueShoot, rate.N(parameter.ShootSoundDuration)},
		{component.CueHit, rate.N(parameter.HitSoundDuration)},
		{component.CuePowerup, rate.N(parameter.PowerupSoundNote1Duration) + rate.N(parameter.PowerupSoundNote2Duration)},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			n, peak := drain(t, CueSound(tt.cue, cfg))
			if n < tt.want-1 || n > tt.want+1 {
				t.Errorf("length = %d samples, want %d", n, tt.want)
			}
			if peak <= 0 || peak > 1 {
				t.Errorf("peak = %f, want (0, 1]", peak)
			}
		})
	}

	if CueSound(component.CueCount, cfg) != nil {
		t.Error("unknown cue should have no sound")
	}
}

func TestMutedCueIsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 0

	_, peak := drain(t, CueSound(component.CuePowerup, cfg))
	if peak != 0 {
		t.Errorf("muted cue peak = %f, want 0", peak)
	}
}

func TestMusicGeneratorNeverEnds(t *testing.T) {
	music := NewMusicGenerator(beep.SampleRate(44100))
	buf := make([][2]float64, 4410)

	peak := 0.0
	for range 20 { // two seconds
		n, ok := music.Stream(buf)
		if n != len(buf) || !ok {
			t.Fatalf("music stopped: (%d, %t)", n, ok)
		}
		for i := range buf {
			peak = max(peak, math.Abs(buf[i][0]))
		}
	}
	if peak == 0 || peak > 1 {
		t.Errorf("music peak = %f", peak)
	}
}
