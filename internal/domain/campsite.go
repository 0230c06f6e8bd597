package domain

import "time"

// Campsite is a single bookable site at the campground. Every campsite belongs
// to exactly one CampsiteType, which determines its nightly fee and maximum
// stay length.
//
// Type is populated on single-record reads (and in eager reservation listings)
// and left nil elsewhere; relations are one-directional references resolved by
// explicit queries, never in-memory back-pointers.
type Campsite struct {
	ID             int64         `json:"id"`
	CampsiteTypeID int64         `json:"campsite_type_id"`
	Nickname       string        `json:"nickname"`
	ImageURL       string        `json:"image_url"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	Type           *CampsiteType `json:"campsite_type,omitempty"`
}
