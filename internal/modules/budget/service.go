// README: Budget service: baseline cost estimation with price-lookup fallbacks, and itinerary validation.
package budget

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"travelpro/internal/modules/preference"
)

var ErrMissingProfile = errors.New("profile missing required fields")

// FlightPricer and HotelPricer are the live price-lookup collaborators.
// Either may be nil; estimation then uses heuristics only.
type FlightPricer interface {
	MinFlightPrice(ctx context.Context, fromID, toID string, depart, ret time.Time) (float64, error)
}

type HotelPricer interface {
	MinHotelPrice(ctx context.Context, location string, checkIn, checkOut time.Time) (float64, error)
}

type Service struct {
	flights   FlightPricer
	hotels    HotelPricer
	tolerance float64
}

// NewService creates the budget service. tolerance is the fraction above the
// exact budget still considered valid (e.g. 0.05).
func NewService(flights FlightPricer, hotels HotelPricer, tolerance float64) *Service {
	return &Service{flights: flights, hotels: hotels, tolerance: tolerance}
}

// FetchBaseline produces the baseline cost breakdown for a trip. Price-lookup
// failures fall back to heuristic estimates; the only error condition is a
// profile without usable travel dates.
func (s *Service) FetchBaseline(ctx context.Context, p *preference.TripProfile) (Breakdown, error) {
	if p == nil || p.StartDate.IsZero() || p.EndDate.IsZero() {
		return Breakdown{}, ErrMissingProfile
	}

	days := p.Days()
	var b Breakdown

	b.Flights = s.flightCost(ctx, p)
	b.Hotels = s.hotelCost(ctx, p)

	row := MealCosts(p.TravelStyle)
	b.Meals = (row.Breakfast + row.Lunch + row.Dinner) * float64(days)
	b.Attractions = AttractionCost * float64(days)
	b.LocalTransport = LocalTransportPerDay * float64(days)

	b.Total = b.Flights + b.Hotels + b.Meals + b.Attractions + b.LocalTransport
	return b, nil
}

// Validate compares the itinerary cost against the budget tolerance band and,
// when exceeded, produces weighted reduction suggestions.
func (s *Service) Validate(p *preference.TripProfile, b Breakdown, totalCost float64) ValidationResult {
	cost := totalCost
	if cost == 0 {
		cost = b.Total
	}
	maxAllowed := p.Budget * (1 + s.tolerance)

	if cost <= maxAllowed {
		return ValidationResult{
			Valid:       true,
			CurrentCost: cost,
			Budget:      p.Budget,
			Remaining:   p.Budget - cost,
		}
	}

	// Excess is measured against the exact budget, which sets a more
	// aggressive reduction target than the tolerance strictly requires.
	excess := cost - p.Budget
	return ValidationResult{
		Valid:                false,
		ReoptimizationNeeded: true,
		CurrentCost:          cost,
		Budget:               p.Budget,
		Excess:               excess,
		ReductionPercentage:  excess / cost * 100,
		Suggestions:          reductionSuggestions(b, excess),
	}
}

// reductionSuggestions allocates the excess across categories by fixed
// weights, emitting a category only when its spend exceeds its weighted share
// so suggested cuts never run deeper than the category's actual cost.
func reductionSuggestions(b Breakdown, excess float64) map[string]Suggestion {
	suggestions := map[string]Suggestion{}

	if b.Hotels > excess*0.4 {
		suggestions["hotels"] = Suggestion{
			Current:            b.Hotels,
			SuggestedReduction: excess * 0.4,
			Action:             "Consider budget hotels or shorter stay",
		}
	}
	if b.Meals > excess*0.3 {
		suggestions["meals"] = Suggestion{
			Current:            b.Meals,
			SuggestedReduction: excess * 0.3,
			Action:             "Reduce dining costs by 20%",
		}
	}
	if b.Attractions > excess*0.2 {
		suggestions["attractions"] = Suggestion{
			Current:            b.Attractions,
			SuggestedReduction: excess * 0.2,
			Action:             "Reduce number of paid attractions",
		}
	}
	return suggestions
}

func (s *Service) flightCost(ctx context.Context, p *preference.TripProfile) float64 {
	if s.flights != nil {
		fromID, toID, ok := airportRoute(p.Origin, p.Destination)
		if ok {
			price, err := s.flights.MinFlightPrice(ctx, fromID, toID, p.StartDate, p.EndDate)
			if err == nil && price > 0 {
				return price
			}
			if err != nil {
				log.Printf("budget: flight lookup failed, using estimate: %v", err)
			}
		}
	}
	return estimateFlightCost(p.TravelStyle)
}

func (s *Service) hotelCost(ctx context.Context, p *preference.TripProfile) float64 {
	if s.hotels != nil {
		price, err := s.hotels.MinHotelPrice(ctx, p.Destination, p.StartDate, p.EndDate)
		if err == nil && price > 0 {
			return price
		}
		if err != nil {
			log.Printf("budget: hotel lookup failed, using estimate: %v", err)
		}
	}
	return estimateHotelCost(p.TravelStyle, p.Days())
}

func estimateFlightCost(style preference.TravelStyle) float64 {
	base := 300.0
	switch style {
	case preference.StyleBudget:
		return base * 0.8
	case preference.StyleLuxury:
		return base * 1.5
	default:
		return base
	}
}

func estimateHotelCost(style preference.TravelStyle, days int) float64 {
	nights := math.Max(1, float64(days-1))
	perNight := 150.0
	switch style {
	case preference.StyleBudget:
		perNight = 80
	case preference.StyleLuxury:
		perNight = 300
	}
	return perNight * nights
}

// airportMap is a small static city-to-airport mapping; cities outside it
// skip the live flight lookup entirely.
var airportMap = map[string]string{
	"sarasota":    "SRQ.AIRPORT",
	"chicago":     "ORD.AIRPORT",
	"new york":    "JFK.AIRPORT",
	"los angeles": "LAX.AIRPORT",
	"miami":       "MIA.AIRPORT",
}

func airportRoute(origin, destination string) (string, string, bool) {
	fromID := lookupAirport(origin)
	toID := lookupAirport(destination)
	return fromID, toID, fromID != "" && toID != ""
}

func lookupAirport(city string) string {
	lower := strings.ToLower(city)
	for name, code := range airportMap {
		if strings.Contains(lower, name) {
			return code
		}
	}
	return ""
}
