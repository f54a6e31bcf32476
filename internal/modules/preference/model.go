// README: Trip profile model and travel style definitions.
package preference

import (
	"strings"
	"time"
)

type TravelStyle string

const (
	StyleLuxury    TravelStyle = "luxury"
	StyleBudget    TravelStyle = "budget"
	StyleModerate  TravelStyle = "moderate"
	StyleAdventure TravelStyle = "adventure"
	StyleRelaxed   TravelStyle = "relaxed"
)

// ParseTravelStyle maps free text to a known style, defaulting to moderate.
func ParseTravelStyle(s string) TravelStyle {
	switch TravelStyle(strings.ToLower(strings.TrimSpace(s))) {
	case StyleLuxury:
		return StyleLuxury
	case StyleBudget:
		return StyleBudget
	case StyleAdventure:
		return StyleAdventure
	case StyleRelaxed:
		return StyleRelaxed
	default:
		return StyleModerate
	}
}

// TripProfile is the structured form of a travel request. It is created once
// per request by the extractor and, apart from preference enrichment during
// extraction, never mutated afterwards.
type TripProfile struct {
	Origin      string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Budget      float64
	TravelStyle TravelStyle
	Preferences []string
	ExplicitConstraints map[string]any
	ImplicitPreferences map[string]any
}

// Days returns the inclusive day count of the trip.
func (p *TripProfile) Days() int {
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return 0
	}
	days := int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// HasPreference reports whether the tag is already present (case-insensitive).
func (p *TripProfile) HasPreference(tag string) bool {
	for _, existing := range p.Preferences {
		if strings.EqualFold(existing, tag) {
			return true
		}
	}
	return false
}
