package models

import (
	"time"

	"github.com/google/uuid"
)

// Trip statuses. The API accepts any transition between them.
const (
	TripStatusWishlist   = "wishlist"
	TripStatusInProgress = "in-progress"
	TripStatusCompleted  = "completed"
)

// ValidTripStatus reports whether s is one of the three trip statuses.
func ValidTripStatus(s string) bool {
	switch s {
	case TripStatusWishlist, TripStatusInProgress, TripStatusCompleted:
		return true
	}
	return false
}

// Trip represents a travel plan owned by a single user
type Trip struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`
	Title       string     `json:"title" db:"title"`
	Destination string     `json:"destination" db:"destination"`
	StartDate   *time.Time `json:"start_date" db:"start_date"`
	EndDate     *time.Time `json:"end_date" db:"end_date"`
	TotalBudget *float64   `json:"total_budget" db:"total_budget"`
	Status      string     `json:"status" db:"status"`
	CoverImage  *string    `json:"cover_image" db:"cover_image"`
	Description *string    `json:"description" db:"description"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}
