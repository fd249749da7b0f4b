package foods

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/user/nutritrack-go/apperror"
)

// MemoryRepository keeps the catalog in process memory.
type MemoryRepository struct {
	mu     sync.RWMutex
	byID   map[string]Food
	byName map[string]string
}

// NewMemoryRepository creates an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:   make(map[string]Food),
		byName: make(map[string]string),
	}
}

func (r *MemoryRepository) sorted(keep func(Food) bool) []Food {
	out := make([]Food, 0, len(r.byID))
	for _, f := range r.byID {
		if keep(f) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

func (r *MemoryRepository) List(_ context.Context) ([]Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(Food) bool { return true }), nil
}

func (r *MemoryRepository) SearchByName(_ context.Context, fragment string) ([]Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	needle := strings.ToLower(fragment)
	return r.sorted(func(f Food) bool {
		return strings.Contains(strings.ToLower(f.Name), needle)
	}), nil
}

func (r *MemoryRepository) GetByName(_ context.Context, name string) (*Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return nil, apperror.ErrRecordNotFound
	}
	f := r.byID[id]
	return &f, nil
}

func (r *MemoryRepository) GetByIDs(_ context.Context, ids []string) (map[string]Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]Food, len(ids))
	for _, id := range ids {
		if f, ok := r.byID[id]; ok {
			out[id] = f
		}
	}
	return out, nil
}

func (r *MemoryRepository) Create(_ context.Context, food *Food) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(food.Name)
	if _, taken := r.byName[key]; taken {
		return apperror.ErrDuplicateRecord
	}
	food.ID = uuid.NewString()
	food.CreatedAt = time.Now().UTC()
	r.byID[food.ID] = *food
	r.byName[key] = food.ID
	return nil
}
