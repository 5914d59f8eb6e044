package dto

import (
	"wanderly-server/internal/models"
	"wanderly-server/internal/planner"
)

// CreateTripRequest represents the payload to create a trip.
// Dates use ISO 8601 (YYYY-MM-DD or RFC3339); optional fields may be omitted.
type CreateTripRequest struct {
	Title       string   `json:"title" validate:"required"`
	Destination string   `json:"destination" validate:"required"`
	StartDate   *string  `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	TotalBudget *float64 `json:"totalBudget" validate:"omitempty,gte=0"`
	Status      string   `json:"status" validate:"omitempty,oneof=wishlist in-progress completed"`
	CoverImage  *string  `json:"coverImage"`
	Description *string  `json:"description"`
}

// UpdateTripRequest represents fields allowed to update a trip.
// All fields are optional; absent ones preserve the stored value.
type UpdateTripRequest struct {
	Title       *string  `json:"title"`
	Destination *string  `json:"destination"`
	StartDate   *string  `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	TotalBudget *float64 `json:"totalBudget" validate:"omitempty,gte=0"`
	Status      *string  `json:"status" validate:"omitempty,oneof=wishlist in-progress completed"`
	CoverImage  *string  `json:"coverImage"`
	Description *string  `json:"description"`
}

// ChangeStatusRequest moves a trip to another lifecycle status
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=wishlist in-progress completed"`
}

// ReplaceItineraryRequest swaps a trip's whole activity set in one transaction
type ReplaceItineraryRequest struct {
	Activities []CreateActivityRequest `json:"activities" validate:"dive"`
}

// TripDetail is a trip enriched with its day-grouped itinerary and
// recomputed budget summary
type TripDetail struct {
	models.Trip
	Itinerary []planner.DayGroup    `json:"itinerary"`
	Budget    planner.BudgetSummary `json:"budget"`
}

// TripResponse envelope for single-trip mutations
type TripResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Trip    models.Trip `json:"trip"`
}

// TripListResponse envelope for trip listings
type TripListResponse struct {
	Success bool          `json:"success"`
	Trips   []models.Trip `json:"trips"`
}

// TripDetailResponse envelope for GET /api/trips/{id}
type TripDetailResponse struct {
	Success bool       `json:"success"`
	Trip    TripDetail `json:"trip"`
}

// CurrentTripResponse envelope for GET /api/trips/current.
// Trip is null when the user has no in-progress trip.
type CurrentTripResponse struct {
	Success bool        `json:"success"`
	Trip    *TripDetail `json:"trip"`
}

// TripStats aggregates the caller's trips for the dashboard
type TripStats struct {
	WishlistCount   int     `json:"wishlist_count"`
	InProgressCount int     `json:"inprogress_count"`
	CompletedCount  int     `json:"completed_count"`
	TotalTrips      int     `json:"total_trips"`
	TotalBudgetAll  float64 `json:"total_budget_all"`
}

// TripStatsResponse envelope for GET /api/trips/stats
type TripStatsResponse struct {
	Success bool      `json:"success"`
	Stats   TripStats `json:"stats"`
}

// TripDaysResponse envelope for the editing view: the full date range
// enumerated day by day, empty days included
type TripDaysResponse struct {
	Success bool               `json:"success"`
	Days    []planner.DayGroup `json:"days"`
}

// MessageResponse confirms an operation with no payload
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
