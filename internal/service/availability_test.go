package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creekriver/backend/internal/domain"
	"github.com/creekriver/backend/internal/service"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func existing(ranges ...[2]time.Time) []domain.Reservation {
	out := make([]domain.Reservation, len(ranges))
	for i, r := range ranges {
		out[i] = domain.Reservation{ID: int64(i + 1), CheckinDate: r[0], CheckoutDate: r[1]}
	}
	return out
}

func TestValidateAvailability_Accepts(t *testing.T) {
	err := service.ValidateAvailability(day(2023, 9, 14), day(2023, 9, 16), 3, nil)
	assert.NoError(t, err)
}

func TestValidateAvailability_InvalidRange(t *testing.T) {
	// Checkout equal to checkin: zero nights.
	err := service.ValidateAvailability(day(2023, 9, 12), day(2023, 9, 12), 7, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)

	// Checkout before checkin.
	err = service.ValidateAvailability(day(2023, 9, 12), day(2023, 9, 10), 7, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)

	// Both wrap the generic validation sentinel too.
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestValidateAvailability_ExceedsMaxStay(t *testing.T) {
	// Eight nights against a seven-night maximum.
	err := service.ValidateAvailability(day(2023, 1, 1), day(2023, 1, 9), 7, nil)
	require.ErrorIs(t, err, domain.ErrExceedsMaxStay)

	// Exactly the maximum is fine.
	err = service.ValidateAvailability(day(2023, 1, 1), day(2023, 1, 8), 7, nil)
	assert.NoError(t, err)
}

func TestValidateAvailability_TouchingBoundaryAccepted(t *testing.T) {
	// Existing reservation occupies the night of Sept 12. A stay starting on
	// the existing checkout day does not conflict (half-open ranges).
	taken := existing([2]time.Time{day(2023, 9, 12), day(2023, 9, 13)})

	err := service.ValidateAvailability(day(2023, 9, 13), day(2023, 9, 14), 3, taken)
	assert.NoError(t, err)
}

func TestValidateAvailability_OverlapRejected(t *testing.T) {
	taken := existing([2]time.Time{day(2023, 9, 12), day(2023, 9, 13)})

	// A range spanning the occupied night is rejected.
	err := service.ValidateAvailability(day(2023, 9, 12), day(2023, 9, 14), 3, taken)
	assert.ErrorIs(t, err, domain.ErrOverlap)
}

func TestValidateAvailability_OverlapCheckedAgainstAll(t *testing.T) {
	taken := existing(
		[2]time.Time{day(2023, 9, 1), day(2023, 9, 5)},
		[2]time.Time{day(2023, 9, 10), day(2023, 9, 12)},
		[2]time.Time{day(2023, 9, 20), day(2023, 9, 25)},
	)

	// Fits in the gap between the second and third reservations.
	assert.NoError(t, service.ValidateAvailability(day(2023, 9, 12), day(2023, 9, 15), 7, taken))

	// Clips the third reservation.
	assert.ErrorIs(t,
		service.ValidateAvailability(day(2023, 9, 18), day(2023, 9, 21), 7, taken),
		domain.ErrOverlap)
}

func TestValidateAvailability_Pure(t *testing.T) {
	taken := existing([2]time.Time{day(2023, 9, 12), day(2023, 9, 13)})
	before := make([]domain.Reservation, len(taken))
	copy(before, taken)

	// Same inputs, same answer, inputs untouched.
	for i := 0; i < 3; i++ {
		err := service.ValidateAvailability(day(2023, 9, 12), day(2023, 9, 14), 3, taken)
		assert.ErrorIs(t, err, domain.ErrOverlap)
	}
	assert.Equal(t, before, taken)
}
