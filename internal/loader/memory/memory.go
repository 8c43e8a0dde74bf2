package memory

import (
	"fmt"
	"sync"

	"nrclassify/internal/domain"
	"nrclassify/internal/loader"
)

// Store is an in-memory record source, useful for tests and demos.
type Store struct {
	mu      sync.RWMutex
	records map[string]*domain.Record
}

func NewStore() *Store {
	return &Store{records: make(map[string]*domain.Record)}
}

// Put registers a record under id, replacing any previous entry.
func (s *Store) Put(id string, rec *domain.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[id] = rec
}

// Load returns the record for id, or loader.ErrNotFound.
func (s *Store) Load(id string) (*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, loader.ErrNotFound)
	}
	return rec, nil
}
