package repositories

import (
	"context"

	"farmconnect/internal/models"
)

// ProduceRepository defines the interface for produce data access.
type ProduceRepository interface {
	Create(ctx context.Context, produce *models.Produce) error
	// ListByUser returns the user's produce in insertion order.
	ListByUser(ctx context.Context, userID string) ([]models.Produce, error)
}
