package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/creekriver/backend/internal/domain"
	"github.com/creekriver/backend/internal/repo"
)

// CampsiteService implements business logic for Campsite operations.
type CampsiteService struct {
	campsites repo.CampsiteRepo
}

// NewCampsiteService constructs a CampsiteService backed by the provided CampsiteRepo.
func NewCampsiteService(r repo.CampsiteRepo) *CampsiteService {
	return &CampsiteService{campsites: r}
}

// Create validates and persists a new campsite.
// Returns domain.ErrValidation for invalid input and domain.ErrConstraint if
// the referenced campsite type does not exist.
func (s *CampsiteService) Create(ctx context.Context, c domain.Campsite) (domain.Campsite, error) {
	if err := validateCampsite(c); err != nil {
		return domain.Campsite{}, err
	}
	result, err := s.campsites.Create(ctx, c)
	if err != nil {
		return domain.Campsite{}, fmt.Errorf("service.CampsiteService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single campsite with its campsite type populated.
// Returns domain.ErrNotFound if it does not exist.
func (s *CampsiteService) GetByID(ctx context.Context, id int64) (domain.Campsite, error) {
	result, err := s.campsites.GetByID(ctx, id)
	if err != nil {
		return domain.Campsite{}, fmt.Errorf("service.CampsiteService.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of campsites plus the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *CampsiteService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Campsite, int64, error) {
	campsites, total, err := s.campsites.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.CampsiteService.ListPaged: %w", err)
	}
	if campsites == nil {
		campsites = []domain.Campsite{}
	}
	return campsites, total, nil
}

// Update validates and persists changes to a campsite's nickname, type
// reference, and image.
// Returns domain.ErrNotFound if the campsite does not exist and
// domain.ErrConstraint if the new type reference does not resolve.
func (s *CampsiteService) Update(ctx context.Context, c domain.Campsite) (domain.Campsite, error) {
	if err := validateCampsite(c); err != nil {
		return domain.Campsite{}, err
	}
	result, err := s.campsites.Update(ctx, c)
	if err != nil {
		return domain.Campsite{}, fmt.Errorf("service.CampsiteService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a campsite by ID. Every reservation on the campsite is
// removed in the same transaction by the schema's cascade.
// Returns domain.ErrNotFound if the campsite does not exist.
func (s *CampsiteService) Delete(ctx context.Context, id int64) error {
	if err := s.campsites.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.CampsiteService.Delete: %w", err)
	}
	return nil
}

// validateCampsite enforces business rules common to both Create and Update.
//   - Nickname must be non-empty (whitespace-only is rejected).
//   - ImageURL must be non-empty.
//   - A campsite type reference must be supplied.
func validateCampsite(c domain.Campsite) error {
	if strings.TrimSpace(c.Nickname) == "" {
		return fmt.Errorf("%w: nickname is required", domain.ErrValidation)
	}
	if strings.TrimSpace(c.ImageURL) == "" {
		return fmt.Errorf("%w: image_url is required", domain.ErrValidation)
	}
	if c.CampsiteTypeID <= 0 {
		return fmt.Errorf("%w: campsite_type_id is required", domain.ErrValidation)
	}
	return nil
}
