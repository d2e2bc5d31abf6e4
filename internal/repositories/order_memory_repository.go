package repositories

import (
	"context"
	"fmt"
	"sync"

	"farmconnect/internal/models"
)

// MemoryOrderRepository is an in-memory implementation of OrderRepository.
type MemoryOrderRepository struct {
	orders []models.Order
	nextID uint
	mu     sync.RWMutex
}

// NewMemoryOrderRepository creates a new instance of MemoryOrderRepository.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{}
}

// Create appends an order and assigns the next ID.
func (r *MemoryOrderRepository) Create(_ context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	order.ID = r.nextID
	r.orders = append(r.orders, *order)
	return nil
}

// ListByUser returns the user's orders in insertion order.
func (r *MemoryOrderRepository) ListByUser(_ context.Context, userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := []models.Order{}
	for _, o := range r.orders {
		if o.UserID == userID {
			list = append(list, o)
		}
	}
	return list, nil
}

// GetByID returns one of the user's orders.
func (r *MemoryOrderRepository) GetByID(_ context.Context, userID string, id uint) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id && o.UserID == userID {
			found := o
			return &found, nil
		}
	}
	return nil, fmt.Errorf("order with ID %d: %w", id, ErrNotFound)
}
