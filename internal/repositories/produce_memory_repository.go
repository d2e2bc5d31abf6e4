package repositories

import (
	"context"
	"sync"

	"farmconnect/internal/models"
)

// MemoryProduceRepository is an in-memory implementation of ProduceRepository.
type MemoryProduceRepository struct {
	produce []models.Produce
	nextID  uint
	mu      sync.RWMutex
}

// NewMemoryProduceRepository creates a new instance of MemoryProduceRepository.
func NewMemoryProduceRepository() *MemoryProduceRepository {
	return &MemoryProduceRepository{}
}

// Create appends produce and assigns the next ID.
func (r *MemoryProduceRepository) Create(_ context.Context, produce *models.Produce) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	produce.ID = r.nextID
	r.produce = append(r.produce, *produce)
	return nil
}

// ListByUser returns the user's produce in insertion order.
func (r *MemoryProduceRepository) ListByUser(_ context.Context, userID string) ([]models.Produce, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := []models.Produce{}
	for _, p := range r.produce {
		if p.UserID == userID {
			list = append(list, p)
		}
	}
	return list, nil
}
