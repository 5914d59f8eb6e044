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
	"wanderly-server/internal/planner"
	"wanderly-server/internal/utils"
)

// TripsHandler manages trip-related endpoints
type TripsHandler struct {
	db         *pgxpool.Pool
	config     *config.Config
	activities *ActivitiesHandler
}

// NewTripsHandler creates a new TripsHandler
func NewTripsHandler(db *pgxpool.Pool, cfg *config.Config, activities *ActivitiesHandler) *TripsHandler {
	return &TripsHandler{db: db, config: cfg, activities: activities}
}

// Trips dispatches by HTTP method for /api/trips
func (h *TripsHandler) Trips(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.ListTrips(w, r)
	case http.MethodPost:
		h.CreateTrip(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// TripSubtree dispatches everything under /api/trips/
func (h *TripsHandler) TripSubtree(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/trips/"), "/")
	parts := strings.Split(rest, "/")

	switch {
	case len(parts) == 1 && parts[0] == "current":
		h.CurrentTrip(w, r)
	case len(parts) == 1 && parts[0] == "stats":
		h.TripStats(w, r)
	case len(parts) == 1:
		tripID, err := uuid.Parse(parts[0])
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid trip id", "trip id must be a UUID")
			return
		}
		switch r.Method {
		case http.MethodGet:
			h.TripDetail(w, r, tripID)
		case http.MethodPut:
			h.UpdateTrip(w, r, tripID)
		case http.MethodDelete:
			h.DeleteTrip(w, r, tripID)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	case len(parts) == 2:
		tripID, err := uuid.Parse(parts[0])
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid trip id", "trip id must be a UUID")
			return
		}
		switch parts[1] {
		case "status":
			h.ChangeStatus(w, r, tripID)
		case "days":
			h.TripDays(w, r, tripID)
		case "itinerary":
			h.ReplaceItinerary(w, r, tripID)
		case "activities":
			switch r.Method {
			case http.MethodGet:
				h.activities.ListForTrip(w, r, tripID)
			case http.MethodPost:
				h.activities.CreateForTrip(w, r, tripID)
			default:
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
		default:
			utils.WriteErrorResponse(w, http.StatusNotFound, "Route not found", "")
		}
	default:
		utils.WriteErrorResponse(w, http.StatusNotFound, "Route not found", "")
	}
}

const tripColumns = `id, user_id, title, destination, start_date, end_date,
	total_budget, status, cover_image, description, created_at, updated_at`

func scanTrip(row pgx.Row) (models.Trip, error) {
	var t models.Trip
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Destination, &t.StartDate,
		&t.EndDate, &t.TotalBudget, &t.Status, &t.CoverImage, &t.Description,
		&t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// loadOwnedTrip fetches a trip scoped to its owner. A trip that does not
// exist and one owned by someone else are indistinguishable: both return
// pgx.ErrNoRows, which callers must answer with 404.
func (h *TripsHandler) loadOwnedTrip(ctx context.Context, tripID, userID uuid.UUID) (models.Trip, error) {
	return scanTrip(h.db.QueryRow(ctx,
		`SELECT `+tripColumns+` FROM trips WHERE id = $1 AND user_id = $2`,
		tripID, userID))
}

// enrich attaches the day-grouped itinerary and the recomputed budget
// summary to a trip
func (h *TripsHandler) enrich(ctx context.Context, trip models.Trip) (dto.TripDetail, error) {
	activities, err := h.activities.loadForTrip(ctx, trip.ID)
	if err != nil {
		return dto.TripDetail{}, err
	}
	return dto.TripDetail{
		Trip:      trip,
		Itinerary: planner.GroupByDay(activities),
		Budget:    planner.Summarize(activities, trip.TotalBudget),
	}, nil
}

// ListTrips handles GET /api/trips with an optional status filter
// @Summary List the caller's trips
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param status query string false "wishlist|in-progress|completed"
// @Success 200 {object} dto.TripListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips [get]
func (h *TripsHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	status := strings.TrimSpace(r.URL.Query().Get("status"))
	if status != "" && !models.ValidTripStatus(status) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "status must be one of: wishlist, in-progress, completed")
		return
	}

	var rows pgx.Rows
	var err error
	if status == "" {
		rows, err = h.db.Query(r.Context(),
			`SELECT `+tripColumns+` FROM trips WHERE user_id = $1 ORDER BY created_at DESC`,
			userID)
	} else {
		rows, err = h.db.Query(r.Context(),
			`SELECT `+tripColumns+` FROM trips WHERE user_id = $1 AND status = $2 ORDER BY created_at DESC`,
			userID, status)
	}
	if err != nil {
		writeServerError(w, h.config, "Database error", err)
		return
	}
	defer rows.Close()

	trips := make([]models.Trip, 0)
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			writeServerError(w, h.config, "Database error", err)
			return
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		writeServerError(w, h.config, "Database error", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TripListResponse{Success: true, Trips: trips})
}

// CurrentTrip handles GET /api/trips/current: the most recent
// in-progress trip with its itinerary and budget, or null
// @Summary Get the current in-progress trip
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CurrentTripResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips/current [get]
func (h *TripsHandler) CurrentTrip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	trip, err := scanTrip(h.db.QueryRow(r.Context(),
		`SELECT `+tripColumns+` FROM trips
		 WHERE user_id = $1 AND status = $2
		 ORDER BY created_at DESC LIMIT 1`,
		userID, models.TripStatusInProgress))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.WriteJSONResponse(w, http.StatusOK, dto.CurrentTripResponse{Success: true, Trip: nil})
			return
		}
		writeServerError(w, h.config, "Database error", err)
		return
	}

	detail, err := h.enrich(r.Context(), trip)
	if err != nil {
		writeServerError(w, h.config, "Database error", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.CurrentTripResponse{Success: true, Trip: &detail})
}

// TripStats handles GET /api/trips/stats for the dashboard
// @Summary Get trip counts per status
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TripStatsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips/stats [get]
func (h *TripsHandler) TripStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var stats dto.TripStats
	err := h.db.QueryRow(r.Context(),
		`SELECT
		   COUNT(*) FILTER (WHERE status = 'wishlist'),
		   COUNT(*) FILTER (WHERE status = 'in-progress'),
		   COUNT(*) FILTER (WHERE status = 'completed'),
		   COUNT(*),
		   COALESCE(SUM(total_budget), 0)
		 FROM trips WHERE user_id = $1`,
		userID).Scan(&stats.WishlistCount, &stats.InProgressCount,
		&stats.CompletedCount, &stats.TotalTrips, &stats.TotalBudgetAll)
	if err != nil {
		writeServerError(w, h.config, "Database error", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TripStatsResponse{Success: true, Stats: stats})
}

// TripDetail handles GET /api/trips/{id}
// @Summary Get one trip with grouped itinerary and budget breakdown
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} dto.TripDetailResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips/{id} [get]
func (h *TripsHandler) TripDetail(w http.ResponseWriter, r *http.Request, tripID uuid.UUID) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	trip, err := h.loadOwnedTrip(r.Context(), tripID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Trip not found", "")
			return
		}
		writeServerError(w, h.config, "Database error", err)
		return
	}

	detail, err := h.enrich(r.Context(), trip)
	if err != nil {
		writeServerError(w, h.config, "Database error", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TripDetailResponse{Success: true, Trip: detail})
}

// TripDays handles GET /api/trips/{id}/days: the editing view that
// enumerates the trip's full date range, empty days included
// @Summary Enumerate the trip's date range day by day
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} dto.TripDaysResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips/{id}/days [get]
func (h *TripsHandler) TripDays(w http.ResponseWriter, r *http.Request, tripID uuid.UUID) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	trip, err := h.loadOwnedTrip(r.Context(), tripID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Trip not found", "")
			return
		}
		writeServerError(w, h.config, "Database error", err)
		return
	}

	if trip.StartDate == nil || trip.EndDate == nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Trip has no date range", "Set start and end dates to edit the itinerary day by day")
		return
	}

	activities, err := h.activities.loadForTrip(r.Context(), trip.ID)
	if err != nil {
		writeServerError(w, h.config, "Database error", err)
		return
	}

	days := planner.EnumerateDays(*trip.StartDate, *trip.EndDate, activities)
	utils.WriteJSONResponse(w, http.StatusOK, dto.TripDaysResponse{Success: true, Days: days})
}

// CreateTrip handles POST /api/trips
// @Summary Create a new trip
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CreateTripRequest true "Trip payload"
// @Success 201 {object} dto.TripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips [post]
func (h *TripsHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.CreateTripRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Destination = strings.TrimSpace(req.Destination)
	if err := utils.ValidateStruct(req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	status := req.Status
	if status == "" {
		status = models.TripStatusWishlist
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "endDate cannot be before startDate")
		return
	}

	now := time.Now()
	trip := models.Trip{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       req.Title,
		Destination: req.Destination,
		StartDate:   startDate,
		EndDate:     endDate,
		TotalBudget: req.TotalBudget,
		Status:      status,
		CoverImage:  req.CoverImage,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err = h.db.Exec(r.Context(),
		`INSERT INTO trips (id, user_id, title, destination, start_date, end_date,
		   total_budget, status, cover_image, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		trip.ID, trip.UserID, trip.Title, trip.Destination, trip.StartDate, trip.EndDate,
		trip.TotalBudget, trip.Status, trip.CoverImage, trip.Description, trip.CreatedAt, trip.UpdatedAt)
	if err != nil {
		writeServerError(w, h.config, "Failed to create trip", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.TripResponse{
		Success: true,
		Message: "Trip created successfully",
		Trip:    trip,
	})
}

// UpdateTrip handles PUT /api/trips/{id}. Absent fields preserve the
// stored value.
// @Summary Update a trip
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param payload body dto.UpdateTripRequest true "Update payload"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips/{id} [put]
func (h *TripsHandler) UpdateTrip(w http.ResponseWriter, r *http.Request, tripID uuid.UUID) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	cur, err := h.loadOwnedTrip(r.Context(), tripID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Trip not found", "")
			return
		}
		writeServerError(w, h.config, "Database error", err)
		return
	}

	var req dto.UpdateTripRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	// Overlay provided fields on the current row
	if req.Title != nil {
		if t := strings.TrimSpace(*req.Title); t != "" {
			cur.Title = t
		} else {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "title cannot be empty")
			return
		}
	}
	if req.Destination != nil {
		if d := strings.TrimSpace(*req.Destination); d != "" {
			cur.Destination = d
		} else {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "destination cannot be empty")
			return
		}
	}
	if req.StartDate != nil {
		t, err := utils.ParseDate(*req.StartDate)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
			return
		}
		cur.StartDate = &t
	}
	if req.EndDate != nil {
		t, err := utils.ParseDate(*req.EndDate)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
			return
		}
		cur.EndDate = &t
	}
	if cur.StartDate != nil && cur.EndDate != nil && cur.EndDate.Before(*cur.StartDate) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "endDate cannot be before startDate")
		return
	}
	if req.TotalBudget != nil {
		cur.TotalBudget = req.TotalBudget
	}
	if req.Status != nil {
		cur.Status = *req.Status
	}
	if req.CoverImage != nil {
		cur.CoverImage = req.CoverImage
	}
	if req.Description != nil {
		cur.Description = req.Description
	}
	cur.UpdatedAt = time.Now()

	_, err = h.db.Exec(r.Context(),
		`UPDATE trips
		    SET title = $1, destination = $2, start_date = $3, end_date = $4,
		        total_budget = $5, status = $6, cover_image = $7, description = $8,
		        updated_at = $9
		  WHERE id = $10 AND user_id = $11`,
		cur.Title, cur.Destination, cur.StartDate, cur.EndDate, cur.TotalBudget,
		cur.Status, cur.CoverImage, cur.Description, cur.UpdatedAt, cur.ID, userID)
	if err != nil {
		writeServerError(w, h.config, "Failed to update trip", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TripResponse{
		Success: true,
		Message: "Trip updated successfully",
		Trip:    cur,
	})
}

// ChangeStatus handles PATCH /api/trips/{id}/status. Any of the three
// statuses may move to any other.
// @Summary Change a trip's status
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param payload body dto.ChangeStatusRequest true "New status"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips/{id}/status [patch]
func (h *TripsHandler) ChangeStatus(w http.ResponseWriter, r *http.Request, tripID uuid.UUID) {
	if r.Method != http.MethodPatch {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.ChangeStatusRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	if !models.ValidTripStatus(req.Status) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid status", "Must be: wishlist, in-progress, or completed")
		return
	}

	trip, err := scanTrip(h.db.QueryRow(r.Context(),
		`UPDATE trips SET status = $1, updated_at = $2
		  WHERE id = $3 AND user_id = $4
		 RETURNING `+tripColumns,
		req.Status, time.Now(), tripID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Trip not found", "")
			return
		}
		writeServerError(w, h.config, "Failed to update status", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TripResponse{
		Success: true,
		Message: "Trip status updated successfully",
		Trip:    trip,
	})
}

// ReplaceItinerary handles PUT /api/trips/{id}/itinerary: the whole
// activity set is swapped in one transaction, so a failure mid-way
// leaves the stored itinerary untouched.
// @Summary Replace a trip's activities atomically
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param payload body dto.ReplaceItineraryRequest true "Full activity set"
// @Success 200 {object} dto.ActivityListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips/{id}/itinerary [put]
func (h *TripsHandler) ReplaceItinerary(w http.ResponseWriter, r *http.Request, tripID uuid.UUID) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	if _, err := h.loadOwnedTrip(r.Context(), tripID, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Trip not found", "")
			return
		}
		writeServerError(w, h.config, "Database error", err)
		return
	}

	var req dto.ReplaceItineraryRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	activities := make([]models.Activity, 0, len(req.Activities))
	for _, ar := range req.Activities {
		a, err := activityFromRequest(tripID, ar)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
			return
		}
		activities = append(activities, a)
	}

	tx, err := h.db.Begin(r.Context())
	if err != nil {
		writeServerError(w, h.config, "Failed to start transaction", err)
		return
	}
	defer tx.Rollback(r.Context())

	if _, err := tx.Exec(r.Context(), `DELETE FROM activities WHERE trip_id = $1`, tripID); err != nil {
		writeServerError(w, h.config, "Failed to replace itinerary", err)
		return
	}

	batch := &pgx.Batch{}
	for _, a := range activities {
		batch.Queue(
			`INSERT INTO activities (id, trip_id, day_number, activity_date, time,
			   title, location, description, cost, category, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			a.ID, a.TripID, a.DayNumber, a.ActivityDate, a.Time,
			a.Title, a.Location, a.Description, a.Cost, a.Category, a.CreatedAt, a.UpdatedAt)
	}
	br := tx.SendBatch(r.Context(), batch)
	for range activities {
		if _, err := br.Exec(); err != nil {
			br.Close()
			writeServerError(w, h.config, "Failed to replace itinerary", err)
			return
		}
	}
	if err := br.Close(); err != nil {
		writeServerError(w, h.config, "Failed to replace itinerary", err)
		return
	}

	if err := tx.Commit(r.Context()); err != nil {
		writeServerError(w, h.config, "Failed to replace itinerary", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ActivityListResponse{
		Success:    true,
		Activities: activities,
	})
}

// DeleteTrip handles DELETE /api/trips/{id}; activities cascade with it
// @Summary Delete a trip
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips/{id} [delete]
func (h *TripsHandler) DeleteTrip(w http.ResponseWriter, r *http.Request, tripID uuid.UUID) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	tag, err := h.db.Exec(r.Context(),
		`DELETE FROM trips WHERE id = $1 AND user_id = $2`, tripID, userID)
	if err != nil {
		writeServerError(w, h.config, "Failed to delete trip", err)
		return
	}
	if tag.RowsAffected() == 0 {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Trip not found", "")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Trip deleted successfully",
	})
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := utils.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
