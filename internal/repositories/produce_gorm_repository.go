package repositories

import (
	"context"
	"fmt"

	"farmconnect/internal/models"

	"gorm.io/gorm"
)

// GORMProduceRepository is a GORM implementation of ProduceRepository.
type GORMProduceRepository struct {
	db *gorm.DB
}

// NewGORMProduceRepository creates a new instance of GORMProduceRepository.
func NewGORMProduceRepository(db *gorm.DB) *GORMProduceRepository {
	return &GORMProduceRepository{
		db: db,
	}
}

// Create inserts produce; the database assigns the ID.
func (r *GORMProduceRepository) Create(ctx context.Context, produce *models.Produce) error {
	if err := conn(ctx, r.db).Create(produce).Error; err != nil {
		return fmt.Errorf("failed to create produce: %w", err)
	}
	return nil
}

// ListByUser retrieves a user's produce ordered by ID.
func (r *GORMProduceRepository) ListByUser(ctx context.Context, userID string) ([]models.Produce, error) {
	produce := []models.Produce{}
	if err := conn(ctx, r.db).Where("user_id = ?", userID).Order("id asc").Find(&produce).Error; err != nil {
		return nil, fmt.Errorf("failed to list produce for user %s: %w", userID, err)
	}
	return produce, nil
}
