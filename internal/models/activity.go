package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity categories.
const (
	CategoryTransport     = "transport"
	CategoryAccommodation = "accommodation"
	CategoryFood          = "food"
	CategoryActivity      = "activity"
	CategoryShopping      = "shopping"
	CategoryOther         = "other"
)

// ValidCategory reports whether c is one of the six activity categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryTransport, CategoryAccommodation, CategoryFood,
		CategoryActivity, CategoryShopping, CategoryOther:
		return true
	}
	return false
}

// Activity represents a single itinerary line item within a trip.
// Ownership is transitive through the parent trip.
type Activity struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	TripID       uuid.UUID  `json:"trip_id" db:"trip_id"`
	DayNumber    int        `json:"day_number" db:"day_number"`
	ActivityDate *time.Time `json:"activity_date" db:"activity_date"`
	Time         *string    `json:"time" db:"time"` // HH:MM, nil when untimed
	Title        string     `json:"title" db:"title"`
	Location     *string    `json:"location" db:"location"`
	Description  *string    `json:"description" db:"description"`
	Cost         float64    `json:"cost" db:"cost"`
	Category     string     `json:"category" db:"category"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}
