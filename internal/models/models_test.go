package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTripStatus(t *testing.T) {
	assert.True(t, ValidTripStatus(TripStatusWishlist))
	assert.True(t, ValidTripStatus(TripStatusInProgress))
	assert.True(t, ValidTripStatus(TripStatusCompleted))

	assert.False(t, ValidTripStatus(""))
	assert.False(t, ValidTripStatus("done"))
	assert.False(t, ValidTripStatus("Wishlist"))
}

func TestValidCategory(t *testing.T) {
	for _, c := range []string{
		CategoryTransport, CategoryAccommodation, CategoryFood,
		CategoryActivity, CategoryShopping, CategoryOther,
	} {
		assert.True(t, ValidCategory(c), c)
	}

	assert.False(t, ValidCategory(""))
	assert.False(t, ValidCategory("Food"))
	assert.False(t, ValidCategory("misc"))
}
