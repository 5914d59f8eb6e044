package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"wanderly-server/internal/config"
	"wanderly-server/internal/dto"
	"wanderly-server/internal/middleware"
	"wanderly-server/internal/models"
	"wanderly-server/internal/utils"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	db     *pgxpool.Pool
	config *config.Config
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(db *pgxpool.Pool, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// Signup handles user registration
// @Summary Register a new user
// @Description Create a new user account with username, email, and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "User registration data"
// @Success 201 {object} dto.AuthResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or duplicate email/username"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.SignupRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	// Duplicate check names the colliding field
	var existingEmail, existingUsername string
	err := h.db.QueryRow(r.Context(),
		"SELECT email, username FROM users WHERE email = $1 OR username = $2",
		req.Email, req.Username).Scan(&existingEmail, &existingUsername)

	if err == nil {
		field := "Username"
		if existingEmail == req.Email {
			field = "Email"
		}
		utils.WriteErrorResponse(w, http.StatusBadRequest, field+" already exists", "")
		return
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		writeServerError(w, h.config, "Database error", err)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeServerError(w, h.config, "Failed to hash password", err)
		return
	}

	userID := uuid.New()
	now := time.Now()

	_, err = h.db.Exec(r.Context(),
		`INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		userID, req.Username, req.Email, string(hashedPassword), now, now)
	if err != nil {
		writeServerError(w, h.config, "Failed to create user", err)
		return
	}

	token, err := middleware.GenerateToken(userID, req.Email, &h.config.JWT)
	if err != nil {
		writeServerError(w, h.config, "Failed to generate token", err)
		return
	}

	user := models.User{
		ID:        userID,
		Username:  req.Username,
		Email:     req.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.AuthResponse{
		Success: true,
		Message: "User registered successfully",
		Token:   token,
		User:    toUserResponse(user),
	})
}

// Login handles user login
// @Summary Login user
// @Description Authenticate user with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.LoginRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	var user models.User
	err := h.db.QueryRow(r.Context(),
		`SELECT id, username, email, password_hash, avatar_url, created_at, updated_at
		 FROM users WHERE email = $1`,
		req.Email).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.AvatarURL, &user.CreatedAt, &user.UpdatedAt)

	// Never reveal whether the email exists or the password was wrong
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials", "Invalid email or password")
			return
		}
		writeServerError(w, h.config, "Database error", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials", "Invalid email or password")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, &h.config.JWT)
	if err != nil {
		writeServerError(w, h.config, "Failed to generate token", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    toUserResponse(user),
	})
}

// Me returns the current user's profile
// @Summary Get current user
// @Description Get the authenticated caller's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MeResponse "Profile retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var user models.User
	err := h.db.QueryRow(r.Context(),
		`SELECT id, username, email, avatar_url, created_at, updated_at
		 FROM users WHERE id = $1`,
		userID).Scan(&user.ID, &user.Username, &user.Email, &user.AvatarURL,
		&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "User not found", "")
			return
		}
		writeServerError(w, h.config, "Database error", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MeResponse{
		Success: true,
		User:    toUserResponse(user),
	})
}
