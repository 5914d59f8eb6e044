package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"wanderly-server/internal/config"
	"wanderly-server/internal/dto"
	"wanderly-server/internal/models"
	"wanderly-server/internal/utils"
)

// ActivitiesHandler manages itinerary activity endpoints
type ActivitiesHandler struct {
	db     *pgxpool.Pool
	config *config.Config
}

// NewActivitiesHandler creates a new ActivitiesHandler
func NewActivitiesHandler(db *pgxpool.Pool, cfg *config.Config) *ActivitiesHandler {
	return &ActivitiesHandler{db: db, config: cfg}
}

const activityColumns = `id, trip_id, day_number, activity_date, time,
	title, location, description, cost, category, created_at, updated_at`

func scanActivity(row pgx.Row) (models.Activity, error) {
	var a models.Activity
	err := row.Scan(&a.ID, &a.TripID, &a.DayNumber, &a.ActivityDate, &a.Time,
		&a.Title, &a.Location, &a.Description, &a.Cost, &a.Category,
		&a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (h *ActivitiesHandler) loadForTrip(ctx context.Context, tripID uuid.UUID) ([]models.Activity, error) {
	rows, err := h.db.Query(ctx,
		`SELECT `+activityColumns+` FROM activities
		 WHERE trip_id = $1
		 ORDER BY day_number, time NULLS FIRST, created_at`,
		tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]models.Activity, 0)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// tripOwned reports whether the trip exists and belongs to the user
func (h *ActivitiesHandler) tripOwned(ctx context.Context, tripID, userID uuid.UUID) (bool, error) {
	var exists bool
	err := h.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM trips WHERE id = $1 AND user_id = $2)`,
		tripID, userID).Scan(&exists)
	return exists, err
}

// activityFromRequest builds an activity row from a create payload,
// applying defaults: cost 0, category "activity"
func activityFromRequest(tripID uuid.UUID, req dto.CreateActivityRequest) (models.Activity, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return models.Activity{}, errors.New("title is required")
	}

	var activityDate *time.Time
	if req.ActivityDate != nil && strings.TrimSpace(*req.ActivityDate) != "" {
		t, err := utils.ParseDate(*req.ActivityDate)
		if err != nil {
			return models.Activity{}, err
		}
		activityDate = &t
	}

	var timeOfDay *string
	if req.Time != nil && strings.TrimSpace(*req.Time) != "" {
		tod, err := utils.ParseTimeOfDay(*req.Time)
		if err != nil {
			return models.Activity{}, err
		}
		timeOfDay = &tod
	}

	cost := 0.0
	if req.Cost != nil {
		cost = *req.Cost
	}
	category := req.Category
	if category == "" {
		category = models.CategoryActivity
	}

	now := time.Now()
	return models.Activity{
		ID:           uuid.New(),
		TripID:       tripID,
		DayNumber:    req.DayNumber,
		ActivityDate: activityDate,
		Time:         timeOfDay,
		Title:        title,
		Location:     req.Location,
		Description:  req.Description,
		Cost:         cost,
		Category:     category,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// ListForTrip handles GET /api/trips/{id}/activities
// @Summary List a trip's activities
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} dto.ActivityListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips/{id}/activities [get]
func (h *ActivitiesHandler) ListForTrip(w http.ResponseWriter, r *http.Request, tripID uuid.UUID) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	owned, err := h.tripOwned(r.Context(), tripID, userID)
	if err != nil {
		writeServerError(w, h.config, "Database error", err)
		return
	}
	if !owned {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Trip not found", "")
		return
	}

	activities, err := h.loadForTrip(r.Context(), tripID)
	if err != nil {
		writeServerError(w, h.config, "Database error", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ActivityListResponse{
		Success:    true,
		Activities: activities,
	})
}

// CreateForTrip handles POST /api/trips/{id}/activities
// @Summary Add an activity to a trip
// @Tags activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param payload body dto.CreateActivityRequest true "Activity payload"
// @Success 201 {object} dto.ActivityResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips/{id}/activities [post]
func (h *ActivitiesHandler) CreateForTrip(w http.ResponseWriter, r *http.Request, tripID uuid.UUID) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	owned, err := h.tripOwned(r.Context(), tripID, userID)
	if err != nil {
		writeServerError(w, h.config, "Database error", err)
		return
	}
	if !owned {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Trip not found", "")
		return
	}

	var req dto.CreateActivityRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	activity, err := activityFromRequest(tripID, req)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	_, err = h.db.Exec(r.Context(),
		`INSERT INTO activities (id, trip_id, day_number, activity_date, time,
		   title, location, description, cost, category, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		activity.ID, activity.TripID, activity.DayNumber, activity.ActivityDate,
		activity.Time, activity.Title, activity.Location, activity.Description,
		activity.Cost, activity.Category, activity.CreatedAt, activity.UpdatedAt)
	if err != nil {
		writeServerError(w, h.config, "Failed to create activity", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.ActivityResponse{
		Success:  true,
		Message:  "Activity created successfully",
		Activity: activity,
	})
}

// ActivityByID dispatches /api/activities/{id}
func (h *ActivitiesHandler) ActivityByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/activities/"), "/")
	activityID, err := uuid.Parse(rest)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid activity id", "activity id must be a UUID")
		return
	}

	switch r.Method {
	case http.MethodPut:
		h.UpdateActivity(w, r, activityID)
	case http.MethodDelete:
		h.DeleteActivity(w, r, activityID)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// loadOwnedActivity fetches an activity through its trip's owner. Same
// 404 posture as trips: missing and not-owned are indistinguishable.
func (h *ActivitiesHandler) loadOwnedActivity(ctx context.Context, activityID, userID uuid.UUID) (models.Activity, error) {
	return scanActivity(h.db.QueryRow(ctx,
		`SELECT a.id, a.trip_id, a.day_number, a.activity_date, a.time,
		        a.title, a.location, a.description, a.cost, a.category,
		        a.created_at, a.updated_at
		   FROM activities a
		   JOIN trips t ON t.id = a.trip_id
		  WHERE a.id = $1 AND t.user_id = $2`,
		activityID, userID))
}

// UpdateActivity handles PUT /api/activities/{id}
// @Summary Update an activity
// @Tags activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Activity ID"
// @Param payload body dto.UpdateActivityRequest true "Update payload"
// @Success 200 {object} dto.ActivityResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/activities/{id} [put]
func (h *ActivitiesHandler) UpdateActivity(w http.ResponseWriter, r *http.Request, activityID uuid.UUID) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	cur, err := h.loadOwnedActivity(r.Context(), activityID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Activity not found", "")
			return
		}
		writeServerError(w, h.config, "Database error", err)
		return
	}

	var req dto.UpdateActivityRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	if req.DayNumber != nil {
		cur.DayNumber = *req.DayNumber
	}
	if req.ActivityDate != nil {
		if strings.TrimSpace(*req.ActivityDate) == "" {
			cur.ActivityDate = nil
		} else {
			t, err := utils.ParseDate(*req.ActivityDate)
			if err != nil {
				utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
				return
			}
			cur.ActivityDate = &t
		}
	}
	if req.Time != nil {
		if strings.TrimSpace(*req.Time) == "" {
			cur.Time = nil
		} else {
			tod, err := utils.ParseTimeOfDay(*req.Time)
			if err != nil {
				utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
				return
			}
			cur.Time = &tod
		}
	}
	if req.Title != nil {
		if t := strings.TrimSpace(*req.Title); t != "" {
			cur.Title = t
		} else {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "title cannot be empty")
			return
		}
	}
	if req.Location != nil {
		cur.Location = req.Location
	}
	if req.Description != nil {
		cur.Description = req.Description
	}
	if req.Cost != nil {
		cur.Cost = *req.Cost
	}
	if req.Category != nil {
		cur.Category = *req.Category
	}
	cur.UpdatedAt = time.Now()

	_, err = h.db.Exec(r.Context(),
		`UPDATE activities
		    SET day_number = $1, activity_date = $2, time = $3, title = $4,
		        location = $5, description = $6, cost = $7, category = $8,
		        updated_at = $9
		  WHERE id = $10`,
		cur.DayNumber, cur.ActivityDate, cur.Time, cur.Title, cur.Location,
		cur.Description, cur.Cost, cur.Category, cur.UpdatedAt, cur.ID)
	if err != nil {
		writeServerError(w, h.config, "Failed to update activity", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ActivityResponse{
		Success:  true,
		Message:  "Activity updated successfully",
		Activity: cur,
	})
}

// DeleteActivity handles DELETE /api/activities/{id}
// @Summary Delete an activity
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param id path string true "Activity ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/activities/{id} [delete]
func (h *ActivitiesHandler) DeleteActivity(w http.ResponseWriter, r *http.Request, activityID uuid.UUID) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	tag, err := h.db.Exec(r.Context(),
		`DELETE FROM activities a
		  USING trips t
		  WHERE a.id = $1 AND t.id = a.trip_id AND t.user_id = $2`,
		activityID, userID)
	if err != nil {
		writeServerError(w, h.config, "Failed to delete activity", err)
		return
	}
	if tag.RowsAffected() == 0 {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Activity not found", "")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Activity deleted successfully",
	})
}
