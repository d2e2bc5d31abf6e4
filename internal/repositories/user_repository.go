package repositories

import (
	"context"

	"farmconnect/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	// UpdateProfile saves the editable profile columns. XP and level are
	// left untouched.
	UpdateProfile(ctx context.Context, user *models.User) error
	// AddXP atomically adds amount to the user's XP, re-derives the level
	// and returns the updated user.
	AddXP(ctx context.Context, id string, amount int) (*models.User, error)
}
