package domain

import "time"

// Room describes a bookable location. Slots hold a shared reference to a Room
// and never mutate or own it.
type Room struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" validate:"required"`
	Description  string    `json:"description,omitempty"`
	Capacity     int       `json:"capacity" validate:"required,gt=0"`
	HasProjector bool      `json:"has_projector"`
	HasComputers int       `json:"has_computers" validate:"gte=0"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
