package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderly-server/internal/models"
)

func timed(day int, hhmm, title string) models.Activity {
	return models.Activity{DayNumber: day, Time: &hhmm, Title: title}
}

func untimed(day int, title string) models.Activity {
	return models.Activity{DayNumber: day, Title: title}
}

func titles(activities []models.Activity) []string {
	out := make([]string, 0, len(activities))
	for _, a := range activities {
		out = append(out, a.Title)
	}
	return out
}

func TestGroupByDayEmpty(t *testing.T) {
	groups := GroupByDay(nil)
	assert.Empty(t, groups)
}

func TestGroupByDayOmitsEmptyDays(t *testing.T) {
	groups := GroupByDay([]models.Activity{
		untimed(3, "museum"),
		untimed(1, "arrival"),
	})

	require.Len(t, groups, 2)
	assert.Equal(t, 1, groups[0].DayNumber)
	assert.Equal(t, 3, groups[1].DayNumber)
}

func TestGroupByDayOrdersWithinDay(t *testing.T) {
	groups := GroupByDay([]models.Activity{
		timed(1, "14:00", "lunch"),
		untimed(1, "wander"),
		timed(1, "09:00", "breakfast"),
		untimed(1, "browse"),
	})

	require.Len(t, groups, 1)
	// Untimed first in insertion order, then ascending by time
	assert.Equal(t, []string{"wander", "browse", "breakfast", "lunch"}, titles(groups[0].Activities))
}

func TestGroupByDayTakesDateFromFirstCarrier(t *testing.T) {
	date := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	a := untimed(1, "a")
	b := untimed(1, "b")
	b.ActivityDate = &date

	groups := GroupByDay([]models.Activity{a, b})

	require.Len(t, groups, 1)
	require.NotNil(t, groups[0].Date)
	assert.Equal(t, date, *groups[0].Date)
}

func TestGroupByDayPreservesActivitySet(t *testing.T) {
	activities := []models.Activity{
		timed(2, "10:00", "hike"),
		untimed(1, "arrival"),
		timed(1, "18:00", "dinner"),
		untimed(4, "departure"),
	}

	groups := GroupByDay(activities)

	seen := map[string]bool{}
	total := 0
	for _, g := range groups {
		for _, a := range g.Activities {
			seen[a.Title] = true
			total++
		}
	}
	assert.Equal(t, len(activities), total)
	for _, a := range activities {
		assert.True(t, seen[a.Title], "missing %s", a.Title)
	}
}

func TestEnumerateDaysIncludesEmptyDays(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 4, 0, 0, 0, 0, time.UTC)

	groups := EnumerateDays(start, end, []models.Activity{
		timed(2, "10:00", "hike"),
	})

	require.Len(t, groups, 4)
	for i, g := range groups {
		assert.Equal(t, i+1, g.DayNumber)
		require.NotNil(t, g.Date)
		assert.Equal(t, start.AddDate(0, 0, i), *g.Date)
	}
	assert.Empty(t, groups[0].Activities)
	assert.Equal(t, []string{"hike"}, titles(groups[1].Activities))
	assert.Empty(t, groups[2].Activities)
	assert.Empty(t, groups[3].Activities)
}

func TestEnumerateDaysSingleDay(t *testing.T) {
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	groups := EnumerateDays(day, day, nil)

	require.Len(t, groups, 1)
	assert.Equal(t, 1, groups[0].DayNumber)
}

func TestEnumerateDaysDropsOutOfRangeActivities(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)

	groups := EnumerateDays(start, end, []models.Activity{
		untimed(1, "kept"),
		untimed(5, "dropped"),
	})

	require.Len(t, groups, 2)
	assert.Equal(t, []string{"kept"}, titles(groups[0].Activities))
	assert.Empty(t, groups[1].Activities)
}

func TestEnumerateDaysInvalidRange(t *testing.T) {
	start := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, EnumerateDays(start, end, nil))
}

func TestEnumerateDaysIgnoresTimeOfDayInRange(t *testing.T) {
	start := time.Date(2026, 6, 1, 23, 30, 0, 0, time.UTC)
	end := time.Date(2026, 6, 3, 0, 15, 0, 0, time.UTC)

	groups := EnumerateDays(start, end, nil)

	assert.Len(t, groups, 3)
}
