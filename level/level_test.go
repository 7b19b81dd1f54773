package level

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/SrWilson89/doom/physics"
	"github.com/SrWilson89/doom/vmath"
)

func TestDefaultLevel(t *testing.T) {
	lvl := Default()

	if len(lvl.Walls) != 12 {
		t.Errorf("wall count = %d, want 12", len(lvl.Walls))
	}
	if len(lvl.InitialSpawns) != 7 || len(lvl.SpawnPoints) != 7 {
		t.Errorf("spawns = %d/%d, want 7/7", len(lvl.InitialSpawns), len(lvl.SpawnPoints))
	}
	if lvl.PlayerStart != vmath.V2(400, 300) {
		t.Errorf("player start = %v", lvl.PlayerStart)
	}

	segs := lvl.Segments()
	if !physics.CanOccupy(lvl.PlayerStart, 12, segs) {
		t.Error("player start collides with a wall")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad size", "width: 0\nheight: 10\nplayer_start: [1, 1]\nspawn_points: [[1, 1]]"},
		{"short wall", "width: 10\nheight: 10\nplayer_start: [1, 1]\nwalls: [[1, 2, 3]]\nspawn_points: [[1, 1]]"},
		{"bad start", "width: 10\nheight: 10\nplayer_start: [1]\nspawn_points: [[1, 1]]"},
		{"no spawns", "width: 10\nheight: 10\nplayer_start: [1, 1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() error = %v, want ErrInvalid", err)
			}
		})
	}

	if _, err := Parse([]byte("walls: {")); err == nil || errors.Is(err, ErrInvalid) {
		t.Errorf("malformed YAML should fail decoding, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.yaml")
	data := "name: box\nwidth: 100\nheight: 100\nplayer_start: [50, 50]\nwalls:\n  - [0, 0, 100, 0]\nspawn_points:\n  - [10, 10]\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	lvl, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if lvl.Name != "box" || len(lvl.Walls) != 1 {
		t.Errorf("unexpected level %+v", lvl)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
