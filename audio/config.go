package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/SrWilson89/doom/component"
	"github.com/SrWilson89/doom/parameter"
)

// Config holds audio settings; volumes are 0.0-1.0
type Config struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
	CueVolumes   [component.CueCount]float64
	MusicVolume  float64
}

// DefaultConfig returns audio enabled at half master volume
func DefaultConfig() *Config {
	cfg := &Config{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		MusicVolume:  parameter.AudioMusicVolume,
	}
	cfg.CueVolumes[component.CueShoot] = parameter.AudioShootVolume
	cfg.CueVolumes[component.CueHit] = parameter.AudioHitVolume
	cfg.CueVolumes[component.CuePowerup] = parameter.AudioPowerupVolume
	return cfg
}

// LoadConfig returns defaults overridden by environment variables
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.ApplyEnv()
	return cfg
}

// ApplyEnv overrides fields from ARENA_* environment variables
// Unparseable values are ignored
func (cfg *Config) ApplyEnv() {
	if enabled := os.Getenv("ARENA_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv("ARENA_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	if vols := os.Getenv("ARENA_SFX_VOLUMES"); vols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(vols), &volumes); err == nil {
			for c := range component.CueCount {
				if v, ok := volumes[c.String()]; ok {
					cfg.CueVolumes[c] = clampVolume(v)
				}
			}
			if v, ok := volumes["music"]; ok {
				cfg.MusicVolume = clampVolume(v)
			}
		}
	}

	if sampleRate := os.Getenv("ARENA_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}

func clampVolume(v float64) float64 {
	return min(1, max(0, v))
}
