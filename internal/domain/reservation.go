package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reservation books one campsite for one user over a contiguous range of
// nights. CheckinDate and CheckoutDate are calendar dates (midnight UTC, no
// time-of-day meaning); the occupied interval is half-open
// [CheckinDate, CheckoutDate), so a checkout on day N never conflicts with
// another party's check-in on day N.
//
// Reservations are never updated in place — a change is modeled as delete +
// create so every persisted reservation has passed validation exactly once.
//
// ConfirmationCode is a database-generated public handle suitable for sharing
// with the guest; the integer ID stays internal to the API.
type Reservation struct {
	ID               int64     `json:"id"`
	ConfirmationCode uuid.UUID `json:"confirmation_code"`
	CampsiteID       int64     `json:"campsite_id"`
	UserProfileID    int64     `json:"user_profile_id"`
	CheckinDate      time.Time `json:"checkin_date"`
	CheckoutDate     time.Time `json:"checkout_date"`
	CreatedAt        time.Time `json:"created_at"`

	// Populated only by eager listings.
	Campsite    *Campsite    `json:"campsite,omitempty"`
	UserProfile *UserProfile `json:"user_profile,omitempty"`
}

// Nights returns the length of the stay in nights.
func (r Reservation) Nights() int {
	return int(r.CheckoutDate.Sub(r.CheckinDate).Hours() / 24)
}

// Overlaps reports whether two half-open date ranges on the same campsite
// share at least one night: a.start < b.end AND b.start < a.end.
func (r Reservation) Overlaps(other Reservation) bool {
	return r.CheckinDate.Before(other.CheckoutDate) && other.CheckinDate.Before(r.CheckoutDate)
}
