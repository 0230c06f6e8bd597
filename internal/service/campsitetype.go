package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/creekriver/backend/internal/domain"
	"github.com/creekriver/backend/internal/repo"
)

// CampsiteTypeService implements business logic for CampsiteType operations.
// Types are administrative data: created or adjusted rarely, never deleted
// while campsites reference them.
type CampsiteTypeService struct {
	types repo.CampsiteTypeRepo
}

// NewCampsiteTypeService constructs a CampsiteTypeService backed by the provided repo.
func NewCampsiteTypeService(r repo.CampsiteTypeRepo) *CampsiteTypeService {
	return &CampsiteTypeService{types: r}
}

// Create validates and persists a new campsite type.
// Returns domain.ErrConstraint if the name is already taken.
func (s *CampsiteTypeService) Create(ctx context.Context, ct domain.CampsiteType) (domain.CampsiteType, error) {
	if err := validateCampsiteType(ct); err != nil {
		return domain.CampsiteType{}, err
	}
	result, err := s.types.Create(ctx, ct)
	if err != nil {
		return domain.CampsiteType{}, fmt.Errorf("service.CampsiteTypeService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single campsite type by ID.
func (s *CampsiteTypeService) GetByID(ctx context.Context, id int64) (domain.CampsiteType, error) {
	result, err := s.types.GetByID(ctx, id)
	if err != nil {
		return domain.CampsiteType{}, fmt.Errorf("service.CampsiteTypeService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all campsite types ordered by name.
// Always returns a non-nil slice so callers can safely range over it.
func (s *CampsiteTypeService) List(ctx context.Context) ([]domain.CampsiteType, error) {
	types, err := s.types.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CampsiteTypeService.List: %w", err)
	}
	if types == nil {
		return []domain.CampsiteType{}, nil
	}
	return types, nil
}

// Update validates and persists changes to an existing campsite type.
// Existing reservations are not re-validated against a lowered maximum stay;
// the rule applies to new reservations only.
func (s *CampsiteTypeService) Update(ctx context.Context, ct domain.CampsiteType) (domain.CampsiteType, error) {
	if err := validateCampsiteType(ct); err != nil {
		return domain.CampsiteType{}, err
	}
	result, err := s.types.Update(ctx, ct)
	if err != nil {
		return domain.CampsiteType{}, fmt.Errorf("service.CampsiteTypeService.Update: %w", err)
	}
	return result, nil
}

// validateCampsiteType enforces the shape rules for campsite types.
//   - Name must be non-empty.
//   - MaxReservationDays must be positive.
//   - FeePerNight is non-negative by construction (Money rejects negatives at
//     parse time), so no further check is needed here.
func validateCampsiteType(ct domain.CampsiteType) error {
	if strings.TrimSpace(ct.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if ct.MaxReservationDays <= 0 {
		return fmt.Errorf("%w: max_reservation_days must be positive", domain.ErrValidation)
	}
	return nil
}
