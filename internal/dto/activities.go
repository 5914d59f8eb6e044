package dto

import "wanderly-server/internal/models"

// CreateActivityRequest represents the payload to add one activity to a trip
type CreateActivityRequest struct {
	DayNumber    int      `json:"dayNumber" validate:"required,gt=0"`
	ActivityDate *string  `json:"activityDate"`
	Time         *string  `json:"time"`
	Title        string   `json:"title" validate:"required"`
	Location     *string  `json:"location"`
	Description  *string  `json:"description"`
	Cost         *float64 `json:"cost" validate:"omitempty,gte=0"`
	Category     string   `json:"category" validate:"omitempty,oneof=transport accommodation food activity shopping other"`
}

// UpdateActivityRequest represents fields allowed to update an activity.
// All fields are optional; absent ones preserve the stored value.
type UpdateActivityRequest struct {
	DayNumber    *int     `json:"dayNumber" validate:"omitempty,gt=0"`
	ActivityDate *string  `json:"activityDate"`
	Time         *string  `json:"time"`
	Title        *string  `json:"title"`
	Location     *string  `json:"location"`
	Description  *string  `json:"description"`
	Cost         *float64 `json:"cost" validate:"omitempty,gte=0"`
	Category     *string  `json:"category" validate:"omitempty,oneof=transport accommodation food activity shopping other"`
}

// ActivityResponse envelope for single-activity operations
type ActivityResponse struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message,omitempty"`
	Activity models.Activity `json:"activity"`
}

// ActivityListResponse envelope for a trip's activities
type ActivityListResponse struct {
	Success    bool              `json:"success"`
	Activities []models.Activity `json:"activities"`
}
