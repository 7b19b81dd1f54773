// Package score persists the best score across sessions
// Stores are monotonic: a submitted score replaces the best only when strictly greater
package score

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrCorrupt marks an unreadable or invalid score file
var ErrCorrupt = errors.New("corrupt score file")

// MemoryStore keeps the best score for the lifetime of the process
type MemoryStore struct {
	mu      sync.Mutex
	best    int
	session uuid.UUID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Best() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best, nil
}

func (s *MemoryStore) Submit(score int, session uuid.UUID) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if score <= s.best {
		return s.best, false, nil
	}
	s.best = score
	s.session = session
	return s.best, true, nil
}

// Holder returns the session that set the current best
func (s *MemoryStore) Holder() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}
