package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/creekriver/backend/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stay(checkin, checkout time.Time) domain.Reservation {
	return domain.Reservation{CheckinDate: checkin, CheckoutDate: checkout}
}

func TestReservation_Nights(t *testing.T) {
	assert.Equal(t, 1, stay(day(2023, 9, 12), day(2023, 9, 13)).Nights())
	assert.Equal(t, 8, stay(day(2023, 1, 1), day(2023, 1, 9)).Nights())
	// Month boundary.
	assert.Equal(t, 3, stay(day(2023, 9, 29), day(2023, 10, 2)).Nights())
}

func TestReservation_Overlaps(t *testing.T) {
	base := stay(day(2023, 9, 12), day(2023, 9, 15))

	// Ranges are half-open: a checkout on day N does not conflict with a
	// check-in on day N.
	assert.False(t, base.Overlaps(stay(day(2023, 9, 15), day(2023, 9, 16))), "touching at checkout")
	assert.False(t, base.Overlaps(stay(day(2023, 9, 10), day(2023, 9, 12))), "touching at checkin")

	assert.True(t, base.Overlaps(stay(day(2023, 9, 14), day(2023, 9, 16))), "partial overlap at end")
	assert.True(t, base.Overlaps(stay(day(2023, 9, 11), day(2023, 9, 13))), "partial overlap at start")
	assert.True(t, base.Overlaps(stay(day(2023, 9, 13), day(2023, 9, 14))), "contained range")
	assert.True(t, base.Overlaps(stay(day(2023, 9, 10), day(2023, 9, 20))), "containing range")
	assert.True(t, base.Overlaps(base), "identical range")

	// Symmetry.
	other := stay(day(2023, 9, 14), day(2023, 9, 16))
	assert.Equal(t, base.Overlaps(other), other.Overlaps(base))
}
