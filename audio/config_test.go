package audio

import (
	"testing"

	"github.com/SrWilson89/doom/component"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Enabled {
		t.Error("expected audio enabled by default")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("master volume = %f, want 0.5", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("sample rate = %d, want 44100", cfg.SampleRate)
	}
	for c := range component.CueCount {
		if cfg.CueVolumes[c] <= 0 {
			t.Errorf("cue %s has no default volume", c)
		}
	}
}

func TestLoadConfigEnv(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults without env",
			env:  map[string]string{},
			check: func(t *testing.T, cfg *Config) {
				if *cfg != *DefaultConfig() {
					t.Errorf("got %+v, want defaults", cfg)
				}
			},
		},
		{
			name: "disabled",
			env:  map[string]string{"ARENA_AUDIO_ENABLED": "false"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Enabled {
					t.Error("expected audio disabled")
				}
			},
		},
		{
			name: "invalid bool ignored",
			env:  map[string]string{"ARENA_AUDIO_ENABLED": "sometimes"},
			check: func(t *testing.T, cfg *Config) {
				if !cfg.Enabled {
					t.Error("invalid value should keep the default")
				}
			},
		},
		{
			name: "master volume percent",
			env:  map[string]string{"ARENA_MASTER_VOLUME": "80"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.MasterVolume != 0.8 {
					t.Errorf("master volume = %f, want 0.8", cfg.MasterVolume)
				}
			},
		},
		{
			name: "master volume clamped",
			env:  map[string]string{"ARENA_MASTER_VOLUME": "250"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.MasterVolume != 1 {
					t.Errorf("master volume = %f, want 1", cfg.MasterVolume)
				}
			},
		},
		{
			name: "negative master volume clamped",
			env:  map[string]string{"ARENA_MASTER_VOLUME": "-10"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.MasterVolume != 0 {
					t.Errorf("master volume = %f, want 0", cfg.MasterVolume)
				}
			},
		},
		{
			name: "cue volumes json",
			env:  map[string]string{"ARENA_SFX_VOLUMES": `{"shoot":0.2,"powerup":0.4,"music":0}`},
			check: func(t *testing.T, cfg *Config) {
				if cfg.CueVolumes[component.CueShoot] != 0.2 || cfg.CueVolumes[component.CuePowerup] != 0.4 {
					t.Errorf("cue volumes = %v", cfg.CueVolumes)
				}
				if cfg.CueVolumes[component.CueHit] != DefaultConfig().CueVolumes[component.CueHit] {
					t.Error("unlisted cue should keep its default")
				}
				if cfg.MusicVolume != 0 {
					t.Errorf("music volume = %f, want 0", cfg.MusicVolume)
				}
			},
		},
		{
			name: "malformed json ignored",
			env:  map[string]string{"ARENA_SFX_VOLUMES": `{shoot:`},
			check: func(t *testing.T, cfg *Config) {
				if cfg.CueVolumes != DefaultConfig().CueVolumes {
					t.Error("malformed json should keep defaults")
				}
			},
		},
		{
			name: "sample rate",
			env:  map[string]string{"ARENA_SAMPLE_RATE": "48000"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.SampleRate != 48000 {
					t.Errorf("sample rate = %d, want 48000", cfg.SampleRate)
				}
			},
		},
		{
			name: "zero sample rate ignored",
			env:  map[string]string{"ARENA_SAMPLE_RATE": "0"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.SampleRate != 44100 {
					t.Errorf("sample rate = %d, want 44100", cfg.SampleRate)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"ARENA_AUDIO_ENABLED", "ARENA_MASTER_VOLUME", "ARENA_SFX_VOLUMES", "ARENA_SAMPLE_RATE"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			tt.check(t, LoadConfig())
		})
	}
}
