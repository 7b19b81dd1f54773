// Package level loads arena layouts: static walls, player start and spawn points
package level

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/SrWilson89/doom/asset"
	"github.com/SrWilson89/doom/component"
	"github.com/SrWilson89/doom/vmath"
)

// ErrInvalid marks a level that parsed but cannot be played
var ErrInvalid = errors.New("invalid level")

// Level is an immutable arena layout
type Level struct {
	Name          string
	Width, Height float64
	PlayerStart   vmath.Vec2
	Walls         []component.WallComponent
	InitialSpawns []vmath.Vec2
	SpawnPoints   []vmath.Vec2
}

// levelDTO is the YAML shape
type levelDTO struct {
	Name          string      `yaml:"name"`
	Width         float64     `yaml:"width"`
	Height        float64     `yaml:"height"`
	PlayerStart   []float64   `yaml:"player_start"`
	Walls         [][]float64 `yaml:"walls"`
	InitialSpawns [][]float64 `yaml:"initial_spawns"`
	SpawnPoints   [][]float64 `yaml:"spawn_points"`
}

// Parse decodes and validates a YAML level
func Parse(data []byte) (*Level, error) {
	var dto levelDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}

	if dto.Width <= 0 || dto.Height <= 0 {
		return nil, fmt.Errorf("%w: non-positive size %gx%g", ErrInvalid, dto.Width, dto.Height)
	}

	start, err := toPoint(dto.PlayerStart)
	if err != nil {
		return nil, fmt.Errorf("%w: player_start: %v", ErrInvalid, err)
	}

	lvl := &Level{
		Name:        dto.Name,
		Width:       dto.Width,
		Height:      dto.Height,
		PlayerStart: start,
	}

	for i, w := range dto.Walls {
		if len(w) != 4 {
			return nil, fmt.Errorf("%w: wall %d has %d coordinates, want 4", ErrInvalid, i, len(w))
		}
		lvl.Walls = append(lvl.Walls, component.WallComponent{Segment: vmath.Seg(w[0], w[1], w[2], w[3])})
	}

	if lvl.InitialSpawns, err = toPoints(dto.InitialSpawns); err != nil {
		return nil, fmt.Errorf("%w: initial_spawns: %v", ErrInvalid, err)
	}
	if lvl.SpawnPoints, err = toPoints(dto.SpawnPoints); err != nil {
		return nil, fmt.Errorf("%w: spawn_points: %v", ErrInvalid, err)
	}
	if len(lvl.SpawnPoints) == 0 {
		return nil, fmt.Errorf("%w: no spawn points", ErrInvalid)
	}

	return lvl, nil
}

// Load reads a level file from disk
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return Parse(data)
}

// Default returns the built-in arena
func Default() *Level {
	lvl, err := Parse([]byte(asset.DefaultArenaLevel))
	if err != nil {
		panic(fmt.Sprintf("built-in level: %v", err))
	}
	return lvl
}

// Segments returns the wall geometry for collision queries
func (l *Level) Segments() []vmath.Segment {
	return component.Segments(l.Walls)
}

func toPoint(v []float64) (vmath.Vec2, error) {
	if len(v) != 2 {
		return vmath.Vec2{}, fmt.Errorf("point has %d coordinates, want 2", len(v))
	}
	return vmath.V2(v[0], v[1]), nil
}

func toPoints(vs [][]float64) ([]vmath.Vec2, error) {
	out := make([]vmath.Vec2, 0, len(vs))
	for i, v := range vs {
		p, err := toPoint(v)
		if err != nil {
			return nil, fmt.Errorf("index %d: %v", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}
