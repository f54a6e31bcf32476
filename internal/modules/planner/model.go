// README: planning workflow statuses and result shapes.
package planner

import (
	"encoding/json"

	"travelpro/internal/modules/itinerary"
)

type Status string

const (
	StatusInitialized           Status = "initialized"
	StatusExtractingPreferences Status = "extracting_preferences"
	StatusPreferencesExtracted  Status = "preferences_extracted"
	StatusDateValidationFailed  Status = "date_validation_failed"
	StatusFetchingCosts         Status = "fetching_costs"
	StatusCostsFetched          Status = "costs_fetched"
	StatusProposingItinerary    Status = "proposing_itinerary"
	StatusItineraryProposed     Status = "itinerary_proposed"
	StatusValidatingBudget      Status = "validating_budget"
	StatusBudgetValidated       Status = "budget_validated"
	StatusBudgetExceeded        Status = "budget_exceeded"
	StatusError                 Status = "error"
	StatusCompleted             Status = "completed"
)

// AllowedTransitions represents the planning workflow (diagram) as code.
// budget_exceeded loops back to proposing_itinerary while reoptimization
// attempts remain.
var AllowedTransitions = map[Status][]Status{
	StatusInitialized:           {StatusExtractingPreferences},
	StatusExtractingPreferences: {StatusPreferencesExtracted, StatusDateValidationFailed, StatusError},
	StatusPreferencesExtracted:  {StatusFetchingCosts},
	StatusDateValidationFailed:  {StatusCompleted},
	StatusFetchingCosts:         {StatusCostsFetched, StatusError},
	StatusCostsFetched:          {StatusProposingItinerary},
	StatusProposingItinerary:    {StatusItineraryProposed, StatusError},
	StatusItineraryProposed:     {StatusValidatingBudget},
	StatusValidatingBudget:      {StatusBudgetValidated, StatusBudgetExceeded, StatusError},
	StatusBudgetValidated:       {StatusCompleted},
	StatusBudgetExceeded:        {StatusProposingItinerary, StatusCompleted},
	StatusError:                 {StatusCompleted},
}

func CanTransition(from, to Status) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}

// Output is the final result of a planning run. It serializes to one of two
// shapes: the itinerary payload on success, or an error payload carrying the
// status the run failed in.
type Output struct {
	Status    Status
	Err       string
	Itinerary *itinerary.Itinerary
}

func (o Output) MarshalJSON() ([]byte, error) {
	if o.Err != "" || o.Itinerary == nil {
		msg := o.Err
		if msg == "" {
			msg = "no itinerary generated"
		}
		return json.Marshal(struct {
			Error  string `json:"error"`
			Status Status `json:"status"`
		}{msg, o.Status})
	}
	return json.Marshal(struct {
		Days            []itinerary.DayPlan `json:"days"`
		TotalCost       float64             `json:"total_cost"`
		RemainingBudget float64             `json:"remaining_budget"`
	}{o.Itinerary.Days, o.Itinerary.TotalEstimatedCost, o.Itinerary.RemainingBudget})
}

// Failed reports whether the run ended without a usable itinerary.
func (o Output) Failed() bool {
	return o.Err != "" || o.Itinerary == nil
}
