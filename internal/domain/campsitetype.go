// Package domain contains the core data types for the Creek River campground API.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// CampsiteType is a category of campsite (tent, RV, primitive, hammock) with a
// nightly fee and a maximum allowed stay length. Types are created at seed time
// or by an administrative call and are never deleted while a campsite
// references them.
type CampsiteType struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	FeePerNight        Money     `json:"fee_per_night"`
	MaxReservationDays int       `json:"max_reservation_days"`
	CreatedAt          time.Time `json:"created_at"`
}
