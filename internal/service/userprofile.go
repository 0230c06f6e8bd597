package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/creekriver/backend/internal/domain"
	"github.com/creekriver/backend/internal/repo"
)

// UserProfileService implements business logic for UserProfile operations.
type UserProfileService struct {
	users repo.UserProfileRepo
}

// NewUserProfileService constructs a UserProfileService backed by the provided repo.
func NewUserProfileService(r repo.UserProfileRepo) *UserProfileService {
	return &UserProfileService{users: r}
}

// Create validates and persists a new user profile.
// Returns domain.ErrValidation if a required field is missing.
func (s *UserProfileService) Create(ctx context.Context, up domain.UserProfile) (domain.UserProfile, error) {
	if strings.TrimSpace(up.FirstName) == "" {
		return domain.UserProfile{}, fmt.Errorf("%w: first_name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(up.LastName) == "" {
		return domain.UserProfile{}, fmt.Errorf("%w: last_name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(up.Email) == "" {
		return domain.UserProfile{}, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	result, err := s.users.Create(ctx, up)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("service.UserProfileService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single user profile by ID.
// Returns domain.ErrNotFound if it does not exist.
func (s *UserProfileService) GetByID(ctx context.Context, id int64) (domain.UserProfile, error) {
	result, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("service.UserProfileService.GetByID: %w", err)
	}
	return result, nil
}

// Delete removes a user profile by ID. Every reservation held by the profile
// is removed in the same transaction by the schema's cascade.
// Returns domain.ErrNotFound if the profile does not exist.
func (s *UserProfileService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.UserProfileService.Delete: %w", err)
	}
	return nil
}
