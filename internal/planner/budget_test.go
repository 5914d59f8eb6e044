package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wanderly-server/internal/models"
)

func activity(cost float64, category string) models.Activity {
	return models.Activity{Title: "x", DayNumber: 1, Cost: cost, Category: category}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil)

	assert.Equal(t, 0.0, s.Spent)
	assert.Equal(t, 0.0, s.Total)
	assert.Equal(t, 0.0, s.Remaining)
	assert.Equal(t, 0.0, s.PercentageUsed)
	assert.Empty(t, s.Breakdown)
}

func TestSummarizeSumsCosts(t *testing.T) {
	total := 1000.0
	activities := []models.Activity{
		activity(300, models.CategoryFood),
		activity(200, models.CategoryTransport),
	}

	s := Summarize(activities, &total)

	assert.Equal(t, 500.0, s.Spent)
	assert.Equal(t, 1000.0, s.Total)
	assert.Equal(t, 500.0, s.Remaining)
	assert.Equal(t, 50.0, s.PercentageUsed)
	assert.Equal(t, map[string]float64{
		models.CategoryFood:      300,
		models.CategoryTransport: 200,
	}, s.Breakdown)
}

func TestSummarizeNilBudgetTreatedAsZero(t *testing.T) {
	activities := []models.Activity{activity(250, models.CategoryOther)}

	s := Summarize(activities, nil)

	assert.Equal(t, 250.0, s.Spent)
	assert.Equal(t, 0.0, s.Total)
	assert.Equal(t, -250.0, s.Remaining)
	// Percentage used is defined as 0 when there is no budget
	assert.Equal(t, 0.0, s.PercentageUsed)
}

func TestSummarizeOverBudget(t *testing.T) {
	total := 100.0
	activities := []models.Activity{
		activity(80, models.CategoryAccommodation),
		activity(70, models.CategoryShopping),
	}

	s := Summarize(activities, &total)

	assert.Equal(t, 150.0, s.Spent)
	assert.Equal(t, -50.0, s.Remaining)
	assert.Equal(t, 150.0, s.PercentageUsed)
}

func TestSummarizeBreakdownAccumulatesPerCategory(t *testing.T) {
	total := 500.0
	activities := []models.Activity{
		activity(100, models.CategoryFood),
		activity(50, models.CategoryFood),
		activity(0, models.CategoryActivity),
	}

	s := Summarize(activities, &total)

	assert.Equal(t, 150.0, s.Breakdown[models.CategoryFood])
	assert.Equal(t, 0.0, s.Breakdown[models.CategoryActivity])
	// Only categories with at least one activity appear
	assert.NotContains(t, s.Breakdown, models.CategoryTransport)

	var sum float64
	for _, v := range s.Breakdown {
		sum += v
	}
	assert.Equal(t, s.Spent, sum)
}
