package repositories

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"farmconnect/internal/dashboard"
	"farmconnect/internal/models"

	"github.com/google/uuid"
)

// MemoryUserRepository is an in-memory implementation of UserRepository.
type MemoryUserRepository struct {
	users map[string]models.User
	mu    sync.RWMutex
}

// NewMemoryUserRepository creates a new instance of MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[string]models.User),
	}
}

// Create adds a new user. Emails are unique, compared case-insensitively.
func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTakenLocked(user.Email, "") {
		return fmt.Errorf("user with email %s: %w", user.Email, ErrDuplicate)
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = cloneUser(*user)
	return nil
}

// GetByEmail returns a user by email.
func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			found := cloneUser(u)
			return &found, nil
		}
	}
	return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
}

// GetByID returns a user by ID.
func (r *MemoryUserRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
	}
	found := cloneUser(u)
	return &found, nil
}

// UpdateProfile replaces the profile fields of a stored user.
func (r *MemoryUserRepository) UpdateProfile(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[user.ID]
	if !ok {
		return fmt.Errorf("user with ID %s: %w", user.ID, ErrNotFound)
	}
	if r.emailTakenLocked(user.Email, user.ID) {
		return fmt.Errorf("user with email %s: %w", user.Email, ErrDuplicate)
	}
	stored.Name = user.Name
	stored.Email = user.Email
	stored.Location = user.Location
	stored.Bio = user.Bio
	stored.Phone = user.Phone
	stored.FarmSize = user.FarmSize
	stored.PreferredProduce = append([]string(nil), user.PreferredProduce...)
	stored.UpdatedAt = time.Now()
	r.users[user.ID] = stored
	return nil
}

// AddXP adds amount to the user's XP and re-derives the level.
func (r *MemoryUserRepository) AddXP(_ context.Context, id string, amount int) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
	}
	updated, err := dashboard.AwardXP(stored, amount)
	if err != nil {
		return nil, err
	}
	updated.UpdatedAt = time.Now()
	r.users[id] = updated
	found := cloneUser(updated)
	return &found, nil
}

func (r *MemoryUserRepository) emailTakenLocked(email, exceptID string) bool {
	for id, u := range r.users {
		if id != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func cloneUser(u models.User) models.User {
	u.PreferredProduce = append([]string(nil), u.PreferredProduce...)
	return u
}
