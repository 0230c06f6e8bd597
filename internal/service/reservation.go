package service

import (
	"context"
	"fmt"

	"github.com/creekriver/backend/internal/domain"
	"github.com/creekriver/backend/internal/repo"
)

// ReservationService implements the reservation lifecycle: validated creation,
// direct deletion, and the eager listing the display endpoints use.
// It holds campsite and user profile repos because creating a reservation
// requires both referenced parents to exist.
type ReservationService struct {
	reservations repo.ReservationRepo
	campsites    repo.CampsiteRepo
	users        repo.UserProfileRepo
}

// NewReservationService constructs a ReservationService backed by the provided repos.
func NewReservationService(reservations repo.ReservationRepo, campsites repo.CampsiteRepo, users repo.UserProfileRepo) *ReservationService {
	return &ReservationService{reservations: reservations, campsites: campsites, users: users}
}

// Create validates and persists a new reservation.
//
// Sequence: verify the campsite (which carries its type's max stay) and the
// user profile exist, fetch the campsite's existing reservations, run the
// availability validator, then insert. Nothing is written when any check
// fails — all validation errors are detected before the insert.
//
// The read-validate-insert sequence is not serialized in-process. Two
// concurrent requests for the same campsite can both pass the read-side
// check, but the reservations_no_overlap exclusion constraint makes the
// insert itself the atomic arbiter: exactly one insert commits and the other
// returns domain.ErrOverlap. Enforcing the rule in the database rather than
// with a per-campsite mutex keeps it correct when several API processes
// share one database.
//
// Returns domain.ErrNotFound if the campsite or user profile does not exist,
// and the validator's ErrInvalidRange / ErrExceedsMaxStay / ErrOverlap on
// rejection.
func (s *ReservationService) Create(ctx context.Context, res domain.Reservation) (domain.Reservation, error) {
	campsite, err := s.campsites.GetByID(ctx, res.CampsiteID)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.Create: campsite: %w", err)
	}
	if _, err := s.users.GetByID(ctx, res.UserProfileID); err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.Create: user profile: %w", err)
	}

	existing, err := s.reservations.ListByCampsiteID(ctx, res.CampsiteID)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.Create: %w", err)
	}

	if err := ValidateAvailability(res.CheckinDate, res.CheckoutDate, campsite.Type.MaxReservationDays, existing); err != nil {
		return domain.Reservation{}, err
	}

	created, err := s.reservations.Create(ctx, res)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single reservation by ID.
// Returns domain.ErrNotFound if it does not exist.
func (s *ReservationService) GetByID(ctx context.Context, id int64) (domain.Reservation, error) {
	result, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all reservations ordered by checkin date with their user
// profile, campsite, and campsite type populated.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	reservations, err := s.reservations.ListWithRelations(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ReservationService.List: %w", err)
	}
	if reservations == nil {
		return []domain.Reservation{}, nil
	}
	return reservations, nil
}

// Delete removes a reservation by ID.
// Deleting an ID that does not exist returns domain.ErrNotFound and leaves
// the store untouched.
func (s *ReservationService) Delete(ctx context.Context, id int64) error {
	if err := s.reservations.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ReservationService.Delete: %w", err)
	}
	return nil
}
