package score

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Record is the on-disk best score
type Record struct {
	Best      int       `yaml:"best"`
	Session   uuid.UUID `yaml:"session"`
	UpdatedAt time.Time `yaml:"updated_at"`
}

// FileStore keeps the best score in a YAML file
// A missing file reads as zero; a corrupt file is replaced by the next record
type FileStore struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// Path returns the backing file
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Best() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.load()
	if err != nil {
		return 0, err
	}
	return rec.Best, nil
}

// Load returns the full stored record
func (s *FileStore) Load() (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) Submit(score int, session uuid.UUID) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.load()
	if err != nil && !errors.Is(err, ErrCorrupt) {
		return 0, false, err
	}
	if score <= rec.Best {
		return rec.Best, false, nil
	}

	next := Record{Best: score, Session: session, UpdatedAt: s.now().UTC()}
	if err := s.save(next); err != nil {
		return rec.Best, false, err
	}
	return score, true, nil
}

func (s *FileStore) load() (Record, error) {
	var rec Record

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return rec, nil
	}
	if err != nil {
		return rec, fmt.Errorf("read score file: %w", err)
	}

	if err := yaml.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if rec.Best < 0 {
		return Record{}, fmt.Errorf("%w: negative best %d", ErrCorrupt, rec.Best)
	}
	return rec, nil
}

// save writes through a temp file and rename so readers never see a partial record
func (s *FileStore) save(rec Record) error {
	data, err := yaml.Marshal(&rec)
	if err != nil {
		return fmt.Errorf("encode score: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create score dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".score-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp score file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close score: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace score file: %w", err)
	}
	return nil
}
