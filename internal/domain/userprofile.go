package domain

import "time"

// UserProfile identifies a camper who can hold reservations.
// Profiles are immutable after creation; deleting one cascades to every
// reservation it holds.
type UserProfile struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
