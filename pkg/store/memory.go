package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/robohr/ai-service/pkg/models"
)

const defaultMemoryCapacity = 1000

var _ models.HistoryStore = &MemoryStore{}

// MemoryStore keeps the most recent command records in a bounded ring.
// It is the default store when no database is configured.
type MemoryStore struct {
	mu       sync.RWMutex
	records  []models.CommandRecord
	capacity int
}

func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = defaultMemoryCapacity
	}
	return &MemoryStore{
		records:  make([]models.CommandRecord, 0, capacity),
		capacity: capacity,
	}
}

func (s *MemoryStore) Put(_ context.Context, record *models.CommandRecord) error {
	if record == nil {
		return NewStorageError("nil record received", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, *record)
	if len(s.records) > s.capacity {
		s.records = s.records[len(s.records)-s.capacity:]
	}
	return nil
}

func (s *MemoryStore) Get(
	_ context.Context,
	recordUUID uuid.UUID,
) (*models.CommandRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.records {
		if s.records[i].UUID == recordUUID {
			record := s.records[i]
			return &record, nil
		}
	}
	return nil, models.NewNotFoundError("command record " + recordUUID.String())
}

// List returns up to limit records, newest first.
func (s *MemoryStore) List(_ context.Context, limit int) ([]models.CommandRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.records)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]models.CommandRecord, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.records[i])
	}
	return out, nil
}

// PurgeDeleted is a no-op. The ring discards old records on Put.
func (s *MemoryStore) PurgeDeleted(_ context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
