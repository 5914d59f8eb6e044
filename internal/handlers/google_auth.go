package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleOAuth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"wanderly-server/internal/config"
	"wanderly-server/internal/dto"
	"wanderly-server/internal/middleware"
	"wanderly-server/internal/models"
	"wanderly-server/internal/utils"
)

// GoogleAuthHandler handles Google OAuth authentication
type GoogleAuthHandler struct {
	db           *pgxpool.Pool
	oauth2Config *oauth2.Config
	config       *config.Config
}

// NewGoogleAuthHandler creates a new GoogleAuthHandler instance
func NewGoogleAuthHandler(db *pgxpool.Pool, cfg *config.Config) *GoogleAuthHandler {
	oauth2Config := &oauth2.Config{
		ClientID:     cfg.GoogleOAuth.ClientID,
		ClientSecret: cfg.GoogleOAuth.ClientSecret,
		RedirectURL:  cfg.GoogleOAuth.RedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &GoogleAuthHandler{
		db:           db,
		oauth2Config: oauth2Config,
		config:       cfg,
	}
}

// GoogleLogin initiates Google OAuth login
// @Summary Google OAuth login
// @Description Initiate Google OAuth login flow
// @Tags auth
// @Produce json
// @Success 200 {object} dto.GoogleLoginResponse
// @Router /api/auth/google/login [get]
func (h *GoogleAuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// State parameter for CSRF protection
	state := uuid.New().String()
	authURL := h.oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOffline)

	utils.WriteJSONResponse(w, http.StatusOK, dto.GoogleLoginResponse{
		Success: true,
		AuthURL: authURL,
		State:   state,
	})
}

// GoogleCallback handles the Google OAuth callback: it exchanges the
// authorization code, upserts the user and redirects to the frontend
// with a signed token
// @Summary Google OAuth callback
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code from Google"
// @Param state query string false "State parameter for CSRF protection"
// @Success 302 {string} string "Redirect to frontend with token"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/google/callback [get]
func (h *GoogleAuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing authorization code", "Authorization code is required")
		return
	}

	token, err := h.oauth2Config.Exchange(r.Context(), code)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid authorization code", err.Error())
		return
	}

	userInfo, err := h.getGoogleUserInfo(r.Context(), token.AccessToken)
	if err != nil {
		writeServerError(w, h.config, "Failed to get user info", err)
		return
	}

	var user models.User
	err = h.db.QueryRow(r.Context(),
		`SELECT id, username, email, password_hash, avatar_url, created_at, updated_at
		   FROM users WHERE email = $1`,
		userInfo.Email).Scan(&user.ID, &user.Username, &user.Email,
		&user.PasswordHash, &user.AvatarURL, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			writeServerError(w, h.config, "Database error", err)
			return
		}
		user, err = h.createGoogleUser(r.Context(), userInfo)
		if err != nil {
			writeServerError(w, h.config, "Failed to create user", err)
			return
		}
	}

	jwtToken, err := middleware.GenerateToken(user.ID, user.Email, &h.config.JWT)
	if err != nil {
		writeServerError(w, h.config, "Failed to generate token", err)
		return
	}

	redirectURL := fmt.Sprintf("%s/auth/callback?token=%s&provider=google",
		strings.TrimRight(h.config.GoogleOAuth.FrontendURL, "/"), jwtToken)
	http.Redirect(w, r, redirectURL, http.StatusFound)
}

// getGoogleUserInfo fetches user information from Google
func (h *GoogleAuthHandler) getGoogleUserInfo(ctx context.Context, accessToken string) (*dto.GoogleUserInfo, error) {
	service, err := googleOAuth2.NewService(ctx, option.WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
	})))
	if err != nil {
		return nil, err
	}

	userInfo, err := service.Userinfo.Get().Do()
	if err != nil {
		return nil, err
	}

	verified := false
	if userInfo.VerifiedEmail != nil {
		verified = *userInfo.VerifiedEmail
	}

	return &dto.GoogleUserInfo{
		ID:       userInfo.Id,
		Email:    userInfo.Email,
		Name:     userInfo.Name,
		Picture:  userInfo.Picture,
		Verified: verified,
	}, nil
}

// createGoogleUser creates a new user from Google OAuth data. The
// username is derived from the email local part, with a numeric suffix
// when taken.
func (h *GoogleAuthHandler) createGoogleUser(ctx context.Context, googleUser *dto.GoogleUserInfo) (models.User, error) {
	base := googleUser.Email
	if i := strings.IndexByte(base, '@'); i > 0 {
		base = base[:i]
	}
	if len(base) > 50 {
		base = base[:50]
	}

	username := base
	for attempt := 1; ; attempt++ {
		var taken bool
		err := h.db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&taken)
		if err != nil {
			return models.User{}, err
		}
		if !taken {
			break
		}
		username = fmt.Sprintf("%s%d", base, attempt)
	}

	userID := uuid.New()
	now := time.Now()

	var avatar *string
	if googleUser.Picture != "" {
		avatar = &googleUser.Picture
	}

	_, err := h.db.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, avatar_url, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		userID, username, googleUser.Email, "", avatar, now, now)
	if err != nil {
		return models.User{}, err
	}

	return models.User{
		ID:        userID,
		Username:  username,
		Email:     googleUser.Email,
		AvatarURL: avatar,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
