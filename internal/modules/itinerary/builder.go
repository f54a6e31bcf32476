package itinerary

// README: day-by-day plan construction. Selection is deterministic: every
// slot is seeded from (city, slot, style, day, offset) so the same request
// always yields the same plan, while different days still vary.

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log"
	"math"
	"math/rand"
	"strings"

	"travelpro/internal/modules/budget"
	"travelpro/internal/modules/preference"
)

var ErrMissingProfile = errors.New("itinerary: trip profile is required")

// Chef generates meal and attraction picks when the catalog has nothing for
// a city. Implementations may call out to an LLM; failures fall back to
// canned placeholders.
type Chef interface {
	SuggestRestaurant(ctx context.Context, city, mealType, style string, day int) (string, error)
	SuggestAttractions(ctx context.Context, city, style string, day, max int) (string, error)
}

type Builder struct {
	catalog *Catalog
	chef    Chef
}

// NewBuilder builds itineraries from the given catalog. chef may be nil.
func NewBuilder(catalog *Catalog, chef Chef) *Builder {
	return &Builder{catalog: catalog, chef: chef}
}

// Build assembles the full day-by-day plan. constraints carries the
// suggestion categories from a failed budget validation; "attractions"
// narrows the POI pool to the top two and "meals" drops luxury restaurants.
func (b *Builder) Build(ctx context.Context, p *preference.TripProfile, bd budget.Breakdown, constraints map[string]budget.Suggestion) (*Itinerary, error) {
	if p == nil {
		return nil, ErrMissingProfile
	}

	numDays := p.Days()
	style := string(p.TravelStyle)

	pois := b.catalog.POIs(ctx, p.Destination)
	_, trimAttractions := constraints["attractions"]
	if trimAttractions && len(pois) > 2 {
		pois = pois[:2]
	}
	_, dropLuxury := constraints["meals"]

	used := make(map[string]bool)
	days := make([]DayPlan, 0, numDays)
	for dayNum := 1; dayNum <= numDays; dayNum++ {
		first := dayNum == 1
		last := dayNum == numDays
		days = append(days, b.buildDay(ctx, p, bd, dayParams{
			num:        dayNum,
			total:      numDays,
			first:      first,
			last:       last,
			style:      style,
			pois:       pois,
			used:       used,
			dropLuxury: dropLuxury,
		}))
	}

	total := 0.0
	for _, d := range days {
		total += d.DailyCost
	}
	total = round2(total)

	return &Itinerary{
		Days:               days,
		TotalEstimatedCost: total,
		RemainingBudget:    round2(p.Budget - total),
	}, nil
}

type dayParams struct {
	num        int
	total      int
	first      bool
	last       bool
	style      string
	pois       []POI
	used       map[string]bool
	dropLuxury bool
}

func (b *Builder) buildDay(ctx context.Context, p *preference.TripProfile, bd budget.Breakdown, dp dayParams) DayPlan {
	var currentCity string
	switch {
	case dp.first:
		currentCity = fmt.Sprintf("from %s to %s", p.Origin, p.Destination)
	case dp.last:
		currentCity = fmt.Sprintf("from %s to %s", p.Destination, p.Origin)
	default:
		currentCity = p.Destination
	}

	transportation := NotApplicable
	if dp.first {
		transportation = formatTransportation("United",
			fmt.Sprintf("from %s to %s", p.Origin, p.Destination),
			"4:12 PM", "6:20 PM")
	} else if dp.last {
		transportation = formatTransportation("United",
			fmt.Sprintf("from %s (%s) to %s (%s)",
				p.Destination, displayAirport(p.Destination),
				p.Origin, displayAirport(p.Origin)),
			"11:12 AM", "3:08 PM")
	}

	var breakfast, lunch, dinner string
	switch {
	case dp.first:
		breakfast = b.selectRestaurant(ctx, p.Origin, "breakfast", dp.style, dp.num, 0, dp.dropLuxury)
		lunch = b.selectRestaurant(ctx, p.Origin, "lunch", dp.style, dp.num, 1, dp.dropLuxury)
		dinner = b.selectRestaurant(ctx, p.Destination, "dinner", dp.style, dp.num, 2, dp.dropLuxury)
	case dp.last:
		breakfast = b.selectRestaurant(ctx, p.Destination, "breakfast", dp.style, dp.num, 0, dp.dropLuxury)
		lunch = b.selectRestaurant(ctx, p.Destination, "lunch", dp.style, dp.num, 1, dp.dropLuxury)
		dinner = NotApplicable
	default:
		breakfast = b.selectRestaurant(ctx, p.Destination, "breakfast", dp.style, dp.num, 0, dp.dropLuxury)
		lunch = b.selectRestaurant(ctx, p.Destination, "lunch", dp.style, dp.num, 1, dp.dropLuxury)
		dinner = b.selectRestaurant(ctx, p.Destination, "dinner", dp.style, dp.num, 2, dp.dropLuxury)
	}

	maxAttractions := 3
	if dp.first {
		maxAttractions = 2
	} else if dp.last {
		maxAttractions = 1
	}
	attraction := b.selectAttractionSlot(ctx, p.Destination, dp.style, dp.num, maxAttractions, dp.pois, dp.used)

	accommodation := NotApplicable
	if !dp.last {
		hotel := b.catalog.Hotel(p.Destination, dp.style)
		accommodation = fmt.Sprintf("%s (Hotel), %s", hotel, p.Destination)
	}

	cost := dailyCost(p.TravelStyle, bd, dp,
		breakfast, lunch, dinner, attraction, accommodation, transportation)

	return DayPlan{
		Day:            dp.num,
		CurrentCity:    currentCity,
		Transportation: transportation,
		Breakfast:      breakfast,
		Attraction:     attraction,
		Lunch:          lunch,
		Dinner:         dinner,
		Accommodation:  accommodation,
		DailyCost:      cost,
	}
}

// selectRestaurant picks a restaurant for a meal slot, preferring the price
// tier matching the travel style. offset keeps the three slots on the same
// day from colliding on the same seed.
func (b *Builder) selectRestaurant(ctx context.Context, city, mealType, style string, day, offset int, dropLuxury bool) string {
	candidates := b.catalog.Restaurants(ctx, city, mealType)
	if dropLuxury {
		kept := candidates[:0:0]
		for _, r := range candidates {
			if r.PriceRange != "luxury" {
				kept = append(kept, r)
			}
		}
		candidates = kept
	}

	if len(candidates) > 0 {
		pool := candidates
		if style == "budget" || style == "luxury" {
			var tiered []Restaurant
			for _, r := range candidates {
				if r.PriceRange == style {
					tiered = append(tiered, r)
				}
			}
			if len(tiered) > 0 {
				pool = tiered
			}
		}
		rng := seededRand(fmt.Sprintf("%s-%s-%s-%d-%d", city, mealType, style, day, offset))
		pick := pool[rng.Intn(len(pool))]
		return fmt.Sprintf("%s, %s", pick.Name, pick.Location)
	}

	if b.chef != nil {
		rec, err := b.chef.SuggestRestaurant(ctx, city, mealType, style, day)
		if err == nil && rec != "" {
			return rec
		}
		if err != nil {
			log.Printf("itinerary: restaurant suggestion failed for %s/%s: %v", city, mealType, err)
		}
	}

	label := "Local"
	switch style {
	case "budget":
		label = "Budget"
	case "moderate":
		label = "Moderate"
	case "luxury":
		label = "Luxury"
	}
	return fmt.Sprintf("%s %s Restaurant, %s", label, titleCase(mealType), city)
}

// selectAttractionSlot fills one day's attraction entry and records the
// picks so later days never repeat them.
func (b *Builder) selectAttractionSlot(ctx context.Context, city, style string, day, max int, pois []POI, used map[string]bool) string {
	available := make([]POI, 0, len(pois))
	for _, p := range pois {
		if !used[p.Name] {
			available = append(available, p)
		}
	}

	selected := selectAttractions(available, day, max)
	if len(selected) > 0 {
		parts := make([]string, 0, len(selected))
		for _, p := range selected {
			used[p.Name] = true
			parts = append(parts, fmt.Sprintf("%s, %s", p.Name, p.Location))
		}
		return strings.Join(parts, "; ")
	}

	if b.chef != nil {
		rec, err := b.chef.SuggestAttractions(ctx, city, style, day, max)
		if err == nil && rec != "" && rec != NotApplicable {
			return rec
		}
		if err != nil {
			log.Printf("itinerary: attraction suggestion failed for %s: %v", city, err)
		}
	}

	fallback := map[string][]string{
		"budget":   {"City Park", "Local Market", "Free Museum"},
		"moderate": {"Museum", "Historic Site", "City Center"},
		"luxury":   {"Premium Museum", "Exclusive Tour", "VIP Experience"},
	}
	names, ok := fallback[style]
	if !ok {
		names = fallback["moderate"]
	}
	if max < len(names) {
		names = names[:max]
	}
	parts := make([]string, 0, len(names))
	for _, n := range names {
		parts = append(parts, fmt.Sprintf("%s, %s", n, city))
	}
	return strings.Join(parts, "; ")
}

// selectAttractions samples up to max POIs deterministically for a given day.
func selectAttractions(pois []POI, day, max int) []POI {
	if len(pois) == 0 {
		return nil
	}
	total := max
	if len(pois) < total {
		total = len(pois)
	}
	if len(pois) <= total {
		out := make([]POI, len(pois))
		copy(out, pois)
		return out
	}
	rng := seededRand(fmt.Sprintf("%d-%d-%d", day, len(pois), max))
	indices := rng.Perm(len(pois))[:total]
	out := make([]POI, 0, total)
	for _, i := range indices {
		out = append(out, pois[i])
	}
	return out
}

// dailyCost aggregates a day's spend from its filled slots.
func dailyCost(style preference.TravelStyle, bd budget.Breakdown, dp dayParams, breakfast, lunch, dinner, attraction, accommodation, transportation string) float64 {
	cost := 0.0
	meals := budget.MealCosts(style)

	if breakfast != NotApplicable {
		cost += meals.Breakfast
	}
	if lunch != NotApplicable {
		cost += meals.Lunch
	}
	if dinner != NotApplicable {
		cost += meals.Dinner
	}

	if attraction != NotApplicable {
		cost += budget.AttractionCost * float64(len(strings.Split(attraction, ";")))
	}

	if accommodation != NotApplicable {
		nights := dp.total - 1
		if nights < 1 {
			nights = 1
		}
		cost += bd.Hotels / float64(nights)
	}

	if transportation != NotApplicable && (dp.first || dp.last) {
		cost += bd.Flights / 2
	}

	if !dp.first && !dp.last {
		cost += budget.LocalTransportPerDay
	}

	return round2(cost)
}

func formatTransportation(provider, route, departure, arrival string) string {
	return fmt.Sprintf("%s, %s, Departure Time: %s, Arrival Time: %s", provider, route, departure, arrival)
}

// displayAirport resolves the code shown on the return leg. Unknown cities
// fall back to the first three letters uppercased.
func displayAirport(city string) string {
	if code, ok := AirportCode(city); ok {
		return code
	}
	upper := strings.ToUpper(strings.TrimSpace(city))
	if len(upper) > 3 {
		upper = upper[:3]
	}
	return upper
}

// seededRand derives a deterministic source from a selection key.
func seededRand(key string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(key))
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
