package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"farmconnect/internal/models"
	"farmconnect/internal/repositories"
)

// ProfileUpdate is a partial profile edit; nil fields are left unchanged.
type ProfileUpdate struct {
	Name     *string
	Email    *string
	Location *string
	Bio      *string
	Phone    *string
	FarmSize *int
}

// ProfileService reads and edits a farmer's own profile.
type ProfileService struct {
	userRepo repositories.UserRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(userRepo repositories.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

// GetProfile returns the user's profile.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies patch to the user. XP and level cannot be edited.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, patch ProfileUpdate) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		user.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Email != nil {
		user.Email = normalizeEmail(*patch.Email)
	}
	if patch.Location != nil {
		user.Location = strings.TrimSpace(*patch.Location)
	}
	if patch.Bio != nil {
		user.Bio = *patch.Bio
	}
	if patch.Phone != nil {
		user.Phone = strings.TrimSpace(*patch.Phone)
	}
	if patch.FarmSize != nil {
		user.FarmSize = *patch.FarmSize
	}

	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetPreferredProduce replaces the user's preferred produce with the given
// tags. Blank tags are dropped and duplicates collapsed, ignoring case.
func (s *ProfileService) SetPreferredProduce(ctx context.Context, userID string, tags []string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PreferredProduce = normalizeTags(tags)
	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *ProfileService) save(ctx context.Context, user *models.User) error {
	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return fmt.Errorf("email '%s': %w", user.Email, ErrEmailTaken)
		}
		return err
	}
	return nil
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	return out
}
