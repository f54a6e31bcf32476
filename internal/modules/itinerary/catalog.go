package itinerary

// README: city content catalog. Serves POIs and restaurants from the builtin
// dataset and falls back to a Places lookup for cities we do not ship data for.
// Fetched results are cached per city for the life of the process.

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"travelpro/internal/maps"
)

// PlaceSource resolves live places for cities missing from the builtin set.
type PlaceSource interface {
	SearchAttractions(ctx context.Context, city string, limit int) ([]maps.Place, error)
	SearchRestaurants(ctx context.Context, city, mealType string, limit int) ([]maps.Place, error)
}

type Catalog struct {
	places PlaceSource

	mu        sync.RWMutex
	poiCache  map[string][]POI
	restCache map[string][]Restaurant
}

func NewCatalog(places PlaceSource) *Catalog {
	return &Catalog{
		places:    places,
		poiCache:  make(map[string][]POI),
		restCache: make(map[string][]Restaurant),
	}
}

// POIs returns attractions for a city, preferring the builtin set.
func (c *Catalog) POIs(ctx context.Context, city string) []POI {
	if pois, ok := builtinPOIs[canonicalCity(city)]; ok {
		return pois
	}

	key := strings.ToLower(city)
	c.mu.RLock()
	cached, ok := c.poiCache[key]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	var pois []POI
	if c.places != nil {
		results, err := c.places.SearchAttractions(ctx, city, 12)
		if err == nil {
			for _, p := range results {
				pois = append(pois, POI{
					Name:          p.Name,
					Type:          "attraction",
					Location:      city,
					VisitDuration: 90,
				})
			}
		}
	}

	c.mu.Lock()
	c.poiCache[key] = pois
	c.mu.Unlock()
	return pois
}

// Restaurants returns restaurants for a city filtered to a meal type. An
// empty result is valid; the caller decides how to fill the slot.
func (c *Catalog) Restaurants(ctx context.Context, city, mealType string) []Restaurant {
	if all, ok := builtinRestaurants[canonicalCity(city)]; ok {
		var matched []Restaurant
		for _, r := range all {
			if r.Type == mealType {
				matched = append(matched, r)
			}
		}
		return matched
	}

	key := strings.ToLower(city) + ":" + mealType
	c.mu.RLock()
	cached, ok := c.restCache[key]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	var restaurants []Restaurant
	if c.places != nil {
		results, err := c.places.SearchRestaurants(ctx, city, mealType, 8)
		if err == nil {
			for _, p := range results {
				restaurants = append(restaurants, Restaurant{
					Name:       p.Name,
					Type:       mealType,
					Location:   city,
					PriceRange: "moderate",
				})
			}
		}
	}

	c.mu.Lock()
	c.restCache[key] = restaurants
	c.mu.Unlock()
	return restaurants
}

// Hotel returns a hotel name for the city matched to the travel style.
func (c *Catalog) Hotel(city, style string) string {
	key := strings.ToLower(strings.TrimSpace(city))
	for known, byStyle := range builtinHotels {
		if strings.Contains(key, known) {
			if name, ok := byStyle[style]; ok {
				return name
			}
			return byStyle["moderate"]
		}
	}
	switch style {
	case "budget":
		return fmt.Sprintf("Budget Stay %s", titleCase(key))
	case "luxury":
		return fmt.Sprintf("The Grand %s", titleCase(key))
	default:
		return fmt.Sprintf("%s Central Hotel", titleCase(key))
	}
}

// AirportCode returns the display code used on return flight labels.
func AirportCode(city string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(city))
	for known, code := range airportCodes {
		if strings.Contains(key, known) {
			return code, true
		}
	}
	return "", false
}

// canonicalCity maps free-form city names onto builtin dataset keys.
func canonicalCity(city string) string {
	key := strings.ToLower(strings.TrimSpace(city))
	for name := range builtinPOIs {
		if strings.Contains(key, strings.ToLower(name)) {
			return name
		}
	}
	for name := range builtinRestaurants {
		if strings.Contains(key, strings.ToLower(name)) {
			return name
		}
	}
	return titleCase(key)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

