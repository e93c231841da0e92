package memory

import (
	"context"
	"sync"

	"github.com/aretw0/todi/pkg/domain"
)

// Store implements ports.RecordStore in memory.
// Safe for concurrent use.
type Store struct {
	records []domain.Record
	mu      sync.RWMutex
}

// NewStore creates a new in-memory store holding a copy of records.
func NewStore(records ...domain.Record) *Store {
	s := &Store{}
	s.records = cloneAll(records)
	return s
}

// List returns copies of the stored records so callers can't mutate store state.
func (s *Store) List(ctx context.Context) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.records), nil
}

// Replace swaps the stored records for a copy of records.
func (s *Store) Replace(ctx context.Context, records []domain.Record) error {
	copied := cloneAll(records)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = copied
	return nil
}

// Append adds copies of records at the end.
func (s *Store) Append(ctx context.Context, records ...domain.Record) error {
	copied := cloneAll(records)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, copied...)
	return nil
}

func cloneAll(records []domain.Record) []domain.Record {
	out := make([]domain.Record, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}
