package handlers

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"wanderly-server/internal/config"
	"wanderly-server/internal/dto"
	"wanderly-server/internal/middleware"
	"wanderly-server/internal/utils"
)

const verificationCodeTTL = 3 * time.Minute

// ForgotPasswordHandler handles the emailed-code password reset flow
type ForgotPasswordHandler struct {
	db     *pgxpool.Pool
	config *config.Config
	email  *utils.EmailService
}

// NewForgotPasswordHandler creates a new ForgotPasswordHandler instance
func NewForgotPasswordHandler(db *pgxpool.Pool, cfg *config.Config) *ForgotPasswordHandler {
	return &ForgotPasswordHandler{
		db:     db,
		config: cfg,
		email:  utils.NewEmailService(&cfg.Email),
	}
}

// ForgotPassword sends a verification code to the user's email
// @Summary Request password reset
// @Description Send a 6-digit verification code to the user's email
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body dto.ForgotPasswordRequest true "Email address"
// @Success 200 {object} dto.ForgotPasswordResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/forgot-password [post]
func (h *ForgotPasswordHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.ForgotPasswordRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	var userID uuid.UUID
	err := h.db.QueryRow(r.Context(),
		`SELECT id FROM users WHERE email = $1`, req.Email).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "User not found", "No account found with this email")
			return
		}
		writeServerError(w, h.config, "Database error", err)
		return
	}

	// Cooldown: refuse while an unexpired code is outstanding
	var expiresAt time.Time
	err = h.db.QueryRow(r.Context(),
		`SELECT expires_at FROM auth_verifications
		 WHERE user_id = $1 AND used = false AND expires_at > NOW()
		 ORDER BY created_at DESC LIMIT 1`,
		userID).Scan(&expiresAt)
	if err == nil {
		utils.WriteErrorResponse(w, http.StatusTooManyRequests, "Code already sent",
			fmt.Sprintf("Please wait %d seconds before requesting a new code", int(time.Until(expiresAt).Seconds())))
		return
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		writeServerError(w, h.config, "Database error", err)
		return
	}

	code, err := generateVerificationCode(6)
	if err != nil {
		writeServerError(w, h.config, "Failed to generate code", err)
		return
	}

	expiresAt = time.Now().Add(verificationCodeTTL)
	_, err = h.db.Exec(r.Context(),
		`INSERT INTO auth_verifications (id, user_id, email, code, used, expires_at, created_at)
		 VALUES ($1, $2, $3, $4, false, $5, $6)`,
		uuid.New(), userID, req.Email, code, expiresAt, time.Now())
	if err != nil {
		writeServerError(w, h.config, "Failed to store verification code", err)
		return
	}

	if h.config.IsEmailConfigured() {
		if err := h.email.SendVerificationCode(req.Email, code); err != nil {
			writeServerError(w, h.config, "Failed to send email", err)
			return
		}
	} else {
		// No SMTP credentials: log the code so development still works
		log.Printf("verification code for %s: %s (expires in 3 minutes)", req.Email, code)
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ForgotPasswordResponse{
		Success:   true,
		Message:   "Verification code has been sent to your email",
		Email:     req.Email,
		ExpiresIn: "3 minutes",
	})
}

// VerifyOTP verifies the emailed code and returns a reset token
// @Summary Verify password reset code
// @Description Verify the 6-digit code and get a temporary reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body dto.VerifyOTPRequest true "Email and verification code"
// @Success 200 {object} dto.VerifyOTPResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/verify-otp [post]
func (h *ForgotPasswordHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.VerifyOTPRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	var userID uuid.UUID
	err := h.db.QueryRow(r.Context(),
		`SELECT id FROM users WHERE email = $1`, req.Email).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "User not found", "No account found with this email")
			return
		}
		writeServerError(w, h.config, "Database error", err)
		return
	}

	var storedCode string
	var expiresAt time.Time
	var used bool
	err = h.db.QueryRow(r.Context(),
		`SELECT code, expires_at, used FROM auth_verifications
		 WHERE user_id = $1 AND email = $2
		 ORDER BY created_at DESC LIMIT 1`,
		userID, req.Email).Scan(&storedCode, &expiresAt, &used)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid code", "No verification code found")
			return
		}
		writeServerError(w, h.config, "Database error", err)
		return
	}

	if used {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Code already used", "This verification code has already been used")
		return
	}
	if time.Now().After(expiresAt) {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Code expired", "Verification code has expired. Please request a new one")
		return
	}
	if storedCode != req.Code {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid code", "The verification code you entered is incorrect")
		return
	}

	resetToken, err := middleware.GenerateResetToken(userID, req.Email, req.Code, &h.config.JWT)
	if err != nil {
		writeServerError(w, h.config, "Failed to generate reset token", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.VerifyOTPResponse{
		Success:    true,
		Message:    "Code verified successfully",
		ResetToken: resetToken,
		ExpiresIn:  h.config.JWT.ResetTokenTTL.String(),
	})
}

// ResetPassword sets a new password using a reset token
// @Summary Reset password
// @Description Set a new password using the reset token from verify-otp
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body dto.ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} dto.ResetPasswordResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/reset-password [post]
func (h *ForgotPasswordHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.ResetPasswordRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	claims, err := middleware.ValidateResetToken(req.ResetToken, &h.config.JWT)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid reset token", err.Error())
		return
	}

	var verificationID uuid.UUID
	var used bool
	var expiresAt time.Time
	err = h.db.QueryRow(r.Context(),
		`SELECT id, used, expires_at FROM auth_verifications
		 WHERE user_id = $1 AND email = $2 AND code = $3
		 ORDER BY created_at DESC LIMIT 1`,
		claims.UserID, claims.Email, claims.Code).Scan(&verificationID, &used, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid verification", "No matching verification found")
			return
		}
		writeServerError(w, h.config, "Database error", err)
		return
	}

	if used {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Code already used", "This verification code has already been used")
		return
	}
	if time.Now().After(expiresAt) {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Code expired", "Verification code has expired")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		writeServerError(w, h.config, "Failed to hash password", err)
		return
	}

	// Password update and code consumption succeed or fail together
	tx, err := h.db.Begin(r.Context())
	if err != nil {
		writeServerError(w, h.config, "Failed to start transaction", err)
		return
	}
	defer tx.Rollback(r.Context())

	_, err = tx.Exec(r.Context(),
		`UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`,
		string(hashedPassword), time.Now(), claims.UserID)
	if err != nil {
		writeServerError(w, h.config, "Failed to update password", err)
		return
	}

	_, err = tx.Exec(r.Context(),
		`UPDATE auth_verifications SET used = true WHERE id = $1`, verificationID)
	if err != nil {
		writeServerError(w, h.config, "Failed to mark code as used", err)
		return
	}

	if err := tx.Commit(r.Context()); err != nil {
		writeServerError(w, h.config, "Failed to commit transaction", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ResetPasswordResponse{
		Success: true,
		Message: "Password has been reset successfully",
	})
}

// generateVerificationCode generates a random n-digit verification code
func generateVerificationCode(length int) (string, error) {
	const digits = "0123456789"
	code := make([]byte, length)

	for i := range code {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		code[i] = digits[num.Int64()]
	}

	return string(code), nil
}
