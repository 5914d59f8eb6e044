// Package planner holds the pure domain computations over a trip's
// activities: budget aggregation and day-by-day itinerary grouping.
// Everything here operates on already-fetched rows and never touches
// the database.
package planner

import "wanderly-server/internal/models"

// BudgetSummary is the derived budget view of a trip. It is recomputed
// on every read and never persisted.
type BudgetSummary struct {
	Spent          float64            `json:"spent"`
	Total          float64            `json:"total"`
	Remaining      float64            `json:"remaining"`
	PercentageUsed float64            `json:"percentage_used"`
	Breakdown      map[string]float64 `json:"breakdown"`
}

// Summarize computes the budget summary for one trip's activities.
// totalBudget may be nil (trip without a declared budget), which is
// treated as 0. Remaining may go negative when the trip is over budget;
// percentage used is defined as 0 when the total budget is 0.
func Summarize(activities []models.Activity, totalBudget *float64) BudgetSummary {
	summary := BudgetSummary{
		Breakdown: make(map[string]float64),
	}
	if totalBudget != nil {
		summary.Total = *totalBudget
	}

	for _, a := range activities {
		summary.Spent += a.Cost
		summary.Breakdown[a.Category] += a.Cost
	}

	summary.Remaining = summary.Total - summary.Spent
	if summary.Total > 0 {
		summary.PercentageUsed = summary.Spent / summary.Total * 100
	}

	return summary
}
