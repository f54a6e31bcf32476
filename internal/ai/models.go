package ai

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ExtractionResult captures the structured trip parameters returned by the model.
type ExtractionResult struct {
	// Origin and Destination are city names as written by the user.
	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	// StartDate and EndDate are textual dates; the preference module parses
	// and validates them (the model is asked for YYYY-MM-DD but not trusted).
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	// Budget is the total trip budget. Models occasionally return it as a
	// quoted string ("1,900"), so it is decoded leniently.
	Budget FlexFloat `json:"budget"`

	// TravelStyle is one of luxury/budget/moderate/adventure/relaxed.
	TravelStyle string `json:"travel_style"`

	// Preferences are explicit free-text preference tags from the request.
	Preferences []string `json:"preferences"`

	// ExplicitConstraints and ImplicitPreferences are open mappings the model
	// fills from stated and inferred constraints respectively.
	ExplicitConstraints map[string]any `json:"explicit_constraints"`
	ImplicitPreferences map[string]any `json:"implicit_preferences"`
}

// FlexFloat decodes a JSON number that may arrive as a string with separators.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexFloat(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(strings.ReplaceAll(strings.TrimPrefix(s, "$"), ",", ""))
	if s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = FlexFloat(n)
	return nil
}
