package planner

import (
	"sort"
	"time"

	"wanderly-server/internal/models"
)

// DayGroup is one day of an itinerary: its 1-based day number, the
// calendar date when known, and the day's activities in display order.
type DayGroup struct {
	DayNumber  int               `json:"day_number"`
	Date       *time.Time        `json:"date"`
	Activities []models.Activity `json:"activities"`
}

// GroupByDay transforms a trip's flat activity list into a day-ordered
// itinerary. Days without activities do not appear; this is the display
// grouping, derived from what exists. Within a day, untimed activities
// sort first in insertion order, then timed activities ascending by time.
// The group date is taken from the first member that carries one.
func GroupByDay(activities []models.Activity) []DayGroup {
	ordered := make([]models.Activity, len(activities))
	copy(ordered, activities)
	sortForDisplay(ordered)

	groups := make([]DayGroup, 0)
	for _, a := range ordered {
		if n := len(groups); n == 0 || groups[n-1].DayNumber != a.DayNumber {
			groups = append(groups, DayGroup{
				DayNumber:  a.DayNumber,
				Activities: make([]models.Activity, 0, 1),
			})
		}
		g := &groups[len(groups)-1]
		if g.Date == nil && a.ActivityDate != nil {
			g.Date = a.ActivityDate
		}
		g.Activities = append(g.Activities, a)
	}
	return groups
}

// EnumerateDays produces the editing view of an itinerary: one group per
// calendar day of the trip's date range inclusive, day numbers 1-based
// from the start date, empty days included. Activities are attached by
// day number; those numbered beyond the range are dropped.
func EnumerateDays(start, end time.Time, activities []models.Activity) []DayGroup {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return []DayGroup{}
	}

	ordered := make([]models.Activity, len(activities))
	copy(ordered, activities)
	sortForDisplay(ordered)

	byDay := make(map[int][]models.Activity)
	for _, a := range ordered {
		byDay[a.DayNumber] = append(byDay[a.DayNumber], a)
	}

	days := int(end.Sub(start).Hours()/24) + 1
	groups := make([]DayGroup, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		acts := byDay[i+1]
		if acts == nil {
			acts = make([]models.Activity, 0)
		}
		groups = append(groups, DayGroup{
			DayNumber:  i + 1,
			Date:       &date,
			Activities: acts,
		})
	}
	return groups
}

// sortForDisplay orders activities by day ascending, untimed before
// timed within a day, then ascending HH:MM. Stable, so untimed
// activities keep their insertion order.
func sortForDisplay(activities []models.Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		a, b := activities[i], activities[j]
		if a.DayNumber != b.DayNumber {
			return a.DayNumber < b.DayNumber
		}
		switch {
		case a.Time == nil && b.Time == nil:
			return false
		case a.Time == nil:
			return true
		case b.Time == nil:
			return false
		default:
			return *a.Time < *b.Time
		}
	})
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
