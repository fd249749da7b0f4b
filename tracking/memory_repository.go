package tracking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository keeps records in process memory, grouped by user and date key.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string][]Record
}

// NewMemoryRepository creates an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string][]Record)}
}

func bucket(userID, dateKey string) string {
	return userID + "|" + dateKey
}

func (r *MemoryRepository) Create(_ context.Context, record *Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record.ID = uuid.NewString()
	record.CreatedAt = time.Now().UTC()
	key := bucket(record.UserID, record.EatenDate)
	r.records[key] = append(r.records[key], *record)
	return nil
}

func (r *MemoryRepository) ListByUserAndDate(_ context.Context, userID, dateKey string) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.records[bucket(userID, dateKey)]
	out := make([]Record, len(stored))
	copy(out, stored)
	return out, nil
}
