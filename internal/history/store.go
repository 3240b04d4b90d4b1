// Package history keeps a log of completed searches.
package history

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Search outcomes
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Record is one completed search
type Record struct {
	ID             string    `json:"id" example:"3f0c6c5e-6a53-4a0e-9d7e-1b1d0b7d9f2a"`
	Latitude       string    `json:"latitude" example:"40.7"`
	Longitude      string    `json:"longitude" example:"-74.0"`
	Outcome        string    `json:"outcome" example:"ok"`
	MaxTemperature *float64  `json:"maxTemperature,omitempty" example:"12.5"`
	Color          string    `json:"color,omitempty" example:"#4caf50"`
	Error          string    `json:"error,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Store persists search records
type Store interface {
	Record(ctx context.Context, r Record) error
	// List returns the most recent records first
	List(ctx context.Context, limit int) ([]Record, error)
	Close() error
}

// prepare fills the generated fields of a record
func prepare(r Record) Record {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return r
}

// MemoryStore keeps records in a bounded in-memory list
type MemoryStore struct {
	mu       sync.RWMutex
	records  []Record
	capacity int
}

// NewMemoryStore keeps at most capacity records, dropping the oldest
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = 100
	}
	return &MemoryStore{capacity: capacity}
}

func (s *MemoryStore) Record(_ context.Context, r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, prepare(r))
	if over := len(s.records) - s.capacity; over > 0 {
		s.records = s.records[over:]
	}
	return nil
}

func (s *MemoryStore) List(_ context.Context, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.records) {
		limit = len(s.records)
	}

	out := make([]Record, 0, limit)
	for i := len(s.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.records[i])
	}
	return out, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
