package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, malformed fee amount).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidRange rejects a reservation whose checkout date is not strictly
// after its checkin date. It wraps ErrValidation so the generic 422 mapping
// still applies while callers can match the specific failure.
var ErrInvalidRange = fmt.Errorf("%w: checkout must be at least one day after checkin", ErrValidation)

// ErrExceedsMaxStay rejects a reservation longer than the campsite type's
// maximum reservation days. Wraps ErrValidation.
var ErrExceedsMaxStay = fmt.Errorf("%w: stay exceeds the maximum for this campsite type", ErrValidation)

// ErrOverlap rejects a reservation whose date range shares a night with an
// existing reservation on the same campsite.
// Handlers should map this to HTTP 409 Conflict.
var ErrOverlap = errors.New("campsite is already reserved for part of this date range")

// ErrConstraint is returned when the database rejects a write because a
// referenced foreign key does not exist or a uniqueness rule fails.
// Handlers should map this to HTTP 409 Conflict.
var ErrConstraint = errors.New("constraint violation")
