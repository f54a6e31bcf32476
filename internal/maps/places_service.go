package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// Place represents a simplified location result.
type Place struct {
	Name             string
	Address          string
	Rating           float32
	PlaceID          string
	UserRatingsTotal int
}

// PlacesService handles interactions with Google Places API. It backs the
// itinerary catalog for cities outside the builtin dataset.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// SearchAttractions returns up to limit well-rated tourist attractions in city.
func (s *PlacesService) SearchAttractions(ctx context.Context, city string, limit int) ([]Place, error) {
	return s.textSearch(ctx, fmt.Sprintf("tourist attractions in %s", city), "tourist_attraction", limit)
}

// SearchRestaurants returns up to limit well-rated restaurants in city
// suitable for mealType (breakfast, lunch, dinner).
func (s *PlacesService) SearchRestaurants(ctx context.Context, city, mealType string, limit int) ([]Place, error) {
	return s.textSearch(ctx, fmt.Sprintf("%s restaurants in %s", mealType, city), "restaurant", limit)
}

func (s *PlacesService) textSearch(ctx context.Context, query, placeType string, limit int) ([]Place, error) {
	r := &maps.TextSearchRequest{
		Query:    query,
		Language: "en",
	}
	if placeType != "" {
		r.Type = maps.PlaceType(placeType)
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var results []Place
	for _, result := range resp.Results {
		if result.Rating < 4.0 { // Filter for quality
			continue
		}
		// Permanently closed places still show up in text search.
		if result.PermanentlyClosed {
			continue
		}
		results = append(results, Place{
			Name:             strings.TrimSpace(result.Name),
			Address:          result.FormattedAddress,
			Rating:           result.Rating,
			PlaceID:          result.PlaceID,
			UserRatingsTotal: result.UserRatingsTotal,
		})
		if limit > 0 && len(results) >= limit {
			break
		}
	}

	return results, nil
}
