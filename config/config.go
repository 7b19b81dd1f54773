// Package config resolves runtime settings from an optional YAML file,
// ARENA_* environment variables and command-line flags, in that order
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SrWilson89/doom/audio"
	"github.com/SrWilson89/doom/engine"
	"github.com/SrWilson89/doom/parameter"
)

// Movement mode names
const (
	MovementWorld  = "world"
	MovementFacing = "facing"
)

// Config is the resolved process configuration
type Config struct {
	MatchDuration     time.Duration `yaml:"match_duration"`
	FrameInterval     time.Duration `yaml:"frame_interval"`
	AudioEnabled      bool          `yaml:"audio_enabled"`
	MasterVolume      float64       `yaml:"master_volume"` // 0.0-1.0
	ScoreFile         string        `yaml:"score_file"`
	MouseSensitivity  float64       `yaml:"mouse_sensitivity"`
	KeyReleaseTimeout time.Duration `yaml:"key_release_timeout"`
	Movement          string        `yaml:"movement"`
	Seed              uint64        `yaml:"seed"`
	LevelFile         string        `yaml:"level_file"`
	KeymapFile        string        `yaml:"keymap_file"`

	// Flag only
	Debug bool `yaml:"-"`
}

// Default returns the built-in settings for the top-down game
func Default() Config {
	return Config{
		MatchDuration:     parameter.MatchDuration,
		FrameInterval:     parameter.FrameUpdateInterval,
		AudioEnabled:      true,
		MasterVolume:      parameter.AudioMasterVolume,
		ScoreFile:         "arena-best.yaml",
		MouseSensitivity:  parameter.PlayerMouseSensitivity,
		KeyReleaseTimeout: parameter.KeyReleaseTimeout,
		Movement:          MovementWorld,
	}
}

// Load resolves base, then the -config file (or ARENA_CONFIG), then the
// environment, then explicitly set flags from args
func Load(name string, args []string, base Config) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	path := fs.String("config", os.Getenv("ARENA_CONFIG"), "YAML config file")

	var flags Config
	fs.DurationVar(&flags.MatchDuration, "duration", base.MatchDuration, "match duration")
	fs.DurationVar(&flags.FrameInterval, "frame", base.FrameInterval, "simulation frame interval")
	fs.BoolVar(&flags.AudioEnabled, "audio", base.AudioEnabled, "enable audio")
	volume := fs.Int("volume", int(base.MasterVolume*100), "master volume 0-100")
	fs.StringVar(&flags.ScoreFile, "scores", base.ScoreFile, "best score file")
	fs.Float64Var(&flags.MouseSensitivity, "sensitivity", base.MouseSensitivity, "radians per pointer unit")
	fs.DurationVar(&flags.KeyReleaseTimeout, "key-release", base.KeyReleaseTimeout, "synthesized key release timeout, 0 disables")
	fs.StringVar(&flags.Movement, "movement", base.Movement, "movement mode: world or facing")
	fs.Uint64Var(&flags.Seed, "seed", base.Seed, "random seed, 0 for random sessions")
	fs.StringVar(&flags.LevelFile, "level", base.LevelFile, "level YAML file")
	fs.StringVar(&flags.KeymapFile, "keymap", base.KeymapFile, "keymap YAML file")
	fs.BoolVar(&flags.Debug, "debug", false, "write logs/arena.log")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := base
	if *path != "" {
		if err := cfg.LoadFile(*path); err != nil {
			return Config{}, err
		}
	}
	cfg.ApplyEnv()

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "duration":
			cfg.MatchDuration = flags.MatchDuration
		case "frame":
			cfg.FrameInterval = flags.FrameInterval
		case "audio":
			cfg.AudioEnabled = flags.AudioEnabled
		case "volume":
			cfg.MasterVolume = float64(*volume) / 100
		case "scores":
			cfg.ScoreFile = flags.ScoreFile
		case "sensitivity":
			cfg.MouseSensitivity = flags.MouseSensitivity
		case "key-release":
			cfg.KeyReleaseTimeout = flags.KeyReleaseTimeout
		case "movement":
			cfg.Movement = flags.Movement
		case "seed":
			cfg.Seed = flags.Seed
		case "level":
			cfg.LevelFile = flags.LevelFile
		case "keymap":
			cfg.KeymapFile = flags.KeymapFile
		case "debug":
			cfg.Debug = flags.Debug
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML document at path; absent keys keep their values
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config read: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides settings from ARENA_* environment variables
// Malformed values are ignored
func (c *Config) ApplyEnv() {
	if enabled := os.Getenv("ARENA_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.AudioEnabled = val
		}
	}

	if volume := os.Getenv("ARENA_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.MasterVolume = float64(val) / 100
		}
	}

	if path := os.Getenv("ARENA_SCORE_FILE"); path != "" {
		c.ScoreFile = path
	}
}

// Validate rejects settings the session cannot run with
// Volume is clamped rather than rejected
func (c *Config) Validate() error {
	var errs []error
	if c.MatchDuration <= 0 {
		errs = append(errs, fmt.Errorf("match duration must be positive, got %v", c.MatchDuration))
	}
	if c.FrameInterval <= 0 {
		errs = append(errs, fmt.Errorf("frame interval must be positive, got %v", c.FrameInterval))
	}
	if c.MouseSensitivity <= 0 {
		errs = append(errs, fmt.Errorf("mouse sensitivity must be positive, got %v", c.MouseSensitivity))
	}
	if c.KeyReleaseTimeout < 0 {
		errs = append(errs, fmt.Errorf("key release timeout must not be negative, got %v", c.KeyReleaseTimeout))
	}
	switch strings.ToLower(c.Movement) {
	case MovementWorld, MovementFacing:
		c.Movement = strings.ToLower(c.Movement)
	default:
		errs = append(errs, fmt.Errorf("unknown movement mode %q", c.Movement))
	}
	c.MasterVolume = min(1, max(0, c.MasterVolume))
	return errors.Join(errs...)
}

// MovementMode maps the movement name to the engine mode
func (c Config) MovementMode() engine.MovementMode {
	if c.Movement == MovementFacing {
		return engine.MovementFacing
	}
	return engine.MovementWorld
}

// AudioConfig derives the sound manager settings
// Per-cue volumes and sample rate still come from the audio environment
func (c Config) AudioConfig() *audio.Config {
	a := audio.LoadConfig()
	a.Enabled = c.AudioEnabled
	a.MasterVolume = c.MasterVolume
	return a
}
