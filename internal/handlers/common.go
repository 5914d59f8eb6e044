package handlers

import (
	"log"
	"net/http"
	"time"

	"wanderly-server/internal/config"
	"wanderly-server/internal/dto"
	"wanderly-server/internal/models"
	"wanderly-server/internal/utils"
)

// writeServerError logs the underlying failure and returns a 500
// envelope. The internal message is surfaced only outside production.
func writeServerError(w http.ResponseWriter, cfg *config.Config, label string, err error) {
	log.Printf("%s: %v", label, err)
	message := ""
	if !cfg.IsProduction() {
		message = err.Error()
	}
	utils.WriteErrorResponse(w, http.StatusInternalServerError, label, message)
}

// toUserResponse maps a user row to its API representation
func toUserResponse(u models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
