package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderly-server/internal/config"
	"wanderly-server/internal/utils"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret:         "test-secret",
		AccessTokenTTL: time.Hour,
		ResetTokenTTL:  10 * time.Minute,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	token, err := GenerateToken(userID, "sam@example.com", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "sam@example.com", claims.Email)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateToken(uuid.New(), "sam@example.com", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, &config.JWTConfig{Secret: "other-secret"})
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: -time.Minute}
	token, err := GenerateToken(uuid.New(), "sam@example.com", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func errMessage(t *testing.T, body []byte) string {
	t.Helper()
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.False(t, resp.Success)
	return resp.Message
}

func TestAuthMiddlewareNoToken(t *testing.T) {
	cfg := testJWTConfig()
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}, cfg)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/trips", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "No token provided. Access denied.", errMessage(t, rec.Body.Bytes()))
}

func TestAuthMiddlewareBadHeaderFormat(t *testing.T) {
	cfg := testJWTConfig()
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	req.Header.Set("Authorization", "not-a-bearer-token")
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid authorization header format", errMessage(t, rec.Body.Bytes()))
}

func TestAuthMiddlewareExpiredTokenMessage(t *testing.T) {
	cfg := testJWTConfig()
	expired := &config.JWTConfig{Secret: cfg.Secret, AccessTokenTTL: -time.Minute}
	token, err := GenerateToken(uuid.New(), "sam@example.com", expired)
	require.NoError(t, err)

	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// Expired tokens get a distinct message so clients re-login
	assert.Equal(t, "Token expired. Please login again.", errMessage(t, rec.Body.Bytes()))
}

func TestAuthMiddlewareGarbageTokenMessage(t *testing.T) {
	cfg := testJWTConfig()
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token. Access denied.", errMessage(t, rec.Body.Bytes()))
}

func TestAuthMiddlewareInjectsIdentity(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()
	token, err := GenerateToken(userID, "sam@example.com", cfg)
	require.NoError(t, err)

	var gotID uuid.UUID
	var gotEmail string
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		id, ok := utils.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		gotID = id
		gotEmail, _ = utils.GetEmailFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "sam@example.com", gotEmail)
}

func TestResetTokenRoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	token, err := GenerateResetToken(userID, "sam@example.com", "123456", cfg)
	require.NoError(t, err)

	claims, err := ValidateResetToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "123456", claims.Code)
}

func TestAccessTokenRejectedAsResetToken(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateToken(uuid.New(), "sam@example.com", cfg)
	require.NoError(t, err)

	_, err = ValidateResetToken(token, cfg)
	assert.Error(t, err)
}
