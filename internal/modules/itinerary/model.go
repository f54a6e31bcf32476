// README: Itinerary aggregate and day plan definitions.
package itinerary

// NotApplicable is the sentinel for day slots that do not apply
// (e.g. no dinner on the departure day).
const NotApplicable = "-"

// DayPlan is the plan for a single trip day. Instances are built fresh on
// every itinerary attempt and never mutated afterwards.
type DayPlan struct {
	Day            int     `json:"day"`
	CurrentCity    string  `json:"current_city"`
	Transportation string  `json:"transportation"`
	Breakfast      string  `json:"breakfast"`
	Attraction     string  `json:"attraction"`
	Lunch          string  `json:"lunch"`
	Dinner         string  `json:"dinner"`
	Accommodation  string  `json:"accommodation"`
	DailyCost      float64 `json:"daily_cost"`
}

// Itinerary is a complete day-by-day plan. A reoptimization attempt replaces
// the whole value; days are 1-based and contiguous.
type Itinerary struct {
	Days               []DayPlan `json:"days"`
	TotalEstimatedCost float64   `json:"total_estimated_cost"`
	RemainingBudget    float64   `json:"remaining_budget"`
}

// POI is a point of interest from the content catalog.
type POI struct {
	Name          string
	Type          string
	Location      string
	VisitDuration int
}

// Restaurant is a dining option from the content catalog.
type Restaurant struct {
	Name       string
	Type       string // breakfast, lunch or dinner
	Location   string
	PriceRange string // budget, moderate or luxury
}
