package repo

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
)

// memorySlotRepo keeps slots in process memory. It is safe for concurrent use
// and is the backend used by tests and STORAGE_BACKEND=memory.
type memorySlotRepo struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemorySlotRepo constructs an empty in-memory SlotRepo.
func NewMemorySlotRepo() SlotRepo {
	return &memorySlotRepo{slots: make(map[string][]byte)}
}

func (r *memorySlotRepo) Get(_ context.Context, key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, fmt.Errorf("repo.memorySlotRepo.Get: %w", err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	data, ok := r.slots[key]
	if !ok {
		return nil, fmt.Errorf("repo.memorySlotRepo.Get: %w", domain.ErrNotFound)
	}
	return slices.Clone(data), nil
}

func (r *memorySlotRepo) Put(_ context.Context, key string, data []byte) error {
	if err := checkKey(key); err != nil {
		return fmt.Errorf("repo.memorySlotRepo.Put: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[key] = slices.Clone(data)
	return nil
}

func (r *memorySlotRepo) Delete(_ context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return fmt.Errorf("repo.memorySlotRepo.Delete: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, key)
	return nil
}
