// README: Budget breakdown, validation result and cost table definitions.
package budget

import "travelpro/internal/modules/preference"

// Breakdown holds the five baseline cost components. Total is always the sum
// of the components.
type Breakdown struct {
	Flights        float64 `json:"flights"`
	Hotels         float64 `json:"hotels"`
	Meals          float64 `json:"meals"`
	Attractions    float64 `json:"attractions"`
	LocalTransport float64 `json:"local_transport"`
	Total          float64 `json:"total"`
}

// Suggestion is a single cost-reduction recommendation for one category.
type Suggestion struct {
	Current            float64 `json:"current"`
	SuggestedReduction float64 `json:"suggested_reduction"`
	Action             string  `json:"action"`
}

// ValidationResult reports whether an itinerary fits the budget and, when it
// does not, how to shrink it. It lives for one orchestration iteration.
type ValidationResult struct {
	Valid                bool
	ReoptimizationNeeded bool
	CurrentCost          float64
	Budget               float64
	// Remaining is set on the valid path. It can be slightly negative when
	// the cost sits inside the tolerance band above the budget.
	Remaining float64
	// Excess and ReductionPercentage are set on the invalid path. Excess is
	// measured against the exact budget, not the tolerance-inflated one.
	Excess              float64
	ReductionPercentage float64
	Suggestions         map[string]Suggestion
}

// MealSlot cost table per travel style. Adventure and relaxed trips price as
// moderate; the table only differentiates spend tiers.
var mealCostTable = map[preference.TravelStyle]MealCostRow{
	preference.StyleBudget:   {Breakfast: 10, Lunch: 15, Dinner: 20},
	preference.StyleModerate: {Breakfast: 15, Lunch: 25, Dinner: 40},
	preference.StyleLuxury:   {Breakfast: 30, Lunch: 50, Dinner: 100},
}

type MealCostRow struct {
	Breakfast float64
	Lunch     float64
	Dinner    float64
}

// MealCosts returns the per-meal cost row for a travel style.
func MealCosts(style preference.TravelStyle) MealCostRow {
	if row, ok := mealCostTable[style]; ok {
		return row
	}
	return mealCostTable[preference.StyleModerate]
}

const (
	// AttractionCost is the flat estimate per paid attraction.
	AttractionCost = 25.0
	// LocalTransportPerDay is the flat local transport fee on non-travel days.
	LocalTransportPerDay = 30.0
)
