package repositories

import (
	"context"

	"farmconnect/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	// ListByUser returns the user's orders in insertion order.
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	GetByID(ctx context.Context, userID string, id uint) (*models.Order, error)
}
