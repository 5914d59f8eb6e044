package utils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateFormats(t *testing.T) {
	d, err := ParseDate("2026-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2026-06-01T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())

	_, err = ParseDate("01/06/2026")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 6, 1, 13, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-06-01", FormatDate(d))
}

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", got)

	got, err = ParseTimeOfDay("9:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", got)

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)

	_, err = ParseTimeOfDay("noon")
	assert.Error(t, err)
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.0.2.5:1234"
	assert.Equal(t, "192.0.2.5", ClientIP(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.9, 192.0.2.5")
	assert.Equal(t, "203.0.113.9", ClientIP(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.9")
	assert.Equal(t, "203.0.113.9", ClientIP(r))
}

type signupPayload struct {
	Username string `validate:"required,min=3,max=50"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func TestValidateStructOK(t *testing.T) {
	err := ValidateStruct(signupPayload{
		Username: "sam",
		Email:    "sam@example.com",
		Password: "secret1",
	})
	assert.NoError(t, err)
}

func TestValidateStructNamesFailingFields(t *testing.T) {
	err := ValidateStruct(signupPayload{
		Username: "ab",
		Email:    "not-an-email",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username must be at least 3 characters")
	assert.Contains(t, err.Error(), "email must be a valid email address")
	assert.Contains(t, err.Error(), "password is required")
}

type budgetPayload struct {
	TotalBudget *float64 `validate:"omitempty,gte=0"`
	Status      string   `validate:"omitempty,oneof=wishlist in-progress completed"`
}

func TestValidateStructOptionalFields(t *testing.T) {
	assert.NoError(t, ValidateStruct(budgetPayload{}))

	neg := -1.0
	err := ValidateStruct(budgetPayload{TotalBudget: &neg})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "totalBudget cannot be negative")

	err = ValidateStruct(budgetPayload{Status: "done"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status must be one of: wishlist, in-progress, completed")
}
