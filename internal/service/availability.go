// Package service contains the business logic for the Creek River API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"fmt"
	"time"

	"github.com/creekriver/backend/internal/domain"
)

// ValidateAvailability decides whether a candidate stay on a campsite can be
// accepted given the reservations that already exist on it. It is a pure
// function: deterministic, no side effects, no storage access, so it can be
// tested exhaustively without a database.
//
// Checks run in order:
//  1. domain.ErrInvalidRange if checkout is not strictly after checkin.
//  2. domain.ErrExceedsMaxStay if the stay is longer than maxDays nights.
//  3. domain.ErrOverlap if the half-open range [checkin, checkout) intersects
//     any existing reservation's range. A checkout on day N does not conflict
//     with another check-in on day N.
//
// Existing reservations are scanned linearly; campsites hold at most a few
// dozen upcoming reservations, so an interval index would be overkill.
func ValidateAvailability(checkin, checkout time.Time, maxDays int, existing []domain.Reservation) error {
	if !checkout.After(checkin) {
		return domain.ErrInvalidRange
	}

	candidate := domain.Reservation{CheckinDate: checkin, CheckoutDate: checkout}
	if nights := candidate.Nights(); nights > maxDays {
		return fmt.Errorf("%w: %d nights requested, maximum is %d", domain.ErrExceedsMaxStay, nights, maxDays)
	}

	for _, res := range existing {
		if candidate.Overlaps(res) {
			return fmt.Errorf("%w: conflicts with reservation %d", domain.ErrOverlap, res.ID)
		}
	}
	return nil
}
