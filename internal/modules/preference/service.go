// README: Preference extraction service (LLM extraction, regex fallback, date validation, enrichment).
package preference

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"travelpro/internal/ai"
)

var (
	// ErrDateValidation marks failures the user must fix by resubmitting with
	// corrected dates. The orchestrator surfaces these verbatim.
	ErrDateValidation = errors.New("date validation failed")
	// ErrExtraction covers any other extraction failure.
	ErrExtraction = errors.New("preference extraction failed")
)

// LLM is the language-model collaborator used for structured extraction.
type LLM interface {
	ExtractTripProfile(ctx context.Context, request string, now time.Time) (*ai.ExtractionResult, error)
}

// Enricher supplies preference tags from similar past trips. Failures are
// absorbed; enrichment is strictly best-effort.
type Enricher interface {
	SimilarPreferences(ctx context.Context, destination string, style TravelStyle) ([]string, error)
	RememberPreferences(ctx context.Context, destination string, style TravelStyle, tags []string) error
}

// Service turns a free-text travel request into a validated TripProfile.
type Service struct {
	llm      LLM
	enricher Enricher
	now      func() time.Time
}

// NewService creates the extractor. llm and enricher may be nil; extraction
// then relies on the regex fallback and skips enrichment.
func NewService(llm LLM, enricher Enricher) *Service {
	return &Service{llm: llm, enricher: enricher, now: time.Now}
}

// Extract builds a TripProfile from the request. Date problems return an
// error wrapping ErrDateValidation; anything else wraps ErrExtraction.
func (s *Service) Extract(ctx context.Context, request string) (*TripProfile, error) {
	profile, err := s.extract(ctx, request)
	if err != nil {
		return nil, err
	}

	if err := validateDates(profile, s.now()); err != nil {
		return nil, err
	}
	if profile.Destination == "" {
		return nil, fmt.Errorf("%w: could not determine a destination from the request", ErrExtraction)
	}

	s.enrich(ctx, profile)
	return profile, nil
}

func (s *Service) extract(ctx context.Context, request string) (*TripProfile, error) {
	if s.llm != nil {
		result, err := s.llm.ExtractTripProfile(ctx, request, s.now())
		if err == nil {
			return s.fromExtraction(result)
		}
		// LLM failures degrade to the regex path rather than failing the request.
		log.Printf("preference: llm extraction failed, using fallback: %v", err)
	}
	return s.fallbackExtract(request)
}

func (s *Service) fromExtraction(r *ai.ExtractionResult) (*TripProfile, error) {
	profile := &TripProfile{
		Origin:              strings.TrimSpace(r.Origin),
		Destination:         strings.TrimSpace(r.Destination),
		Budget:              float64(r.Budget),
		TravelStyle:         ParseTravelStyle(r.TravelStyle),
		Preferences:         r.Preferences,
		ExplicitConstraints: r.ExplicitConstraints,
		ImplicitPreferences: r.ImplicitPreferences,
	}
	if profile.ExplicitConstraints == nil {
		profile.ExplicitConstraints = map[string]any{}
	}
	if profile.ImplicitPreferences == nil {
		profile.ImplicitPreferences = map[string]any{}
	}

	if r.StartDate != "" {
		start, err := ParseDate(r.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid start date: %v", ErrDateValidation, err)
		}
		profile.StartDate = start
	}
	if r.EndDate != "" {
		end, err := ParseDate(r.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid end date: %v", ErrDateValidation, err)
		}
		profile.EndDate = end
	}
	return profile, nil
}

var (
	// Matches "May 28th, 2025", "May 28, 2025" and "May 28 2025".
	textualDateRe = regexp.MustCompile(`([A-Z][a-z]+\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4})`)
	isoDateRe     = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	budgetRe      = regexp.MustCompile(`\$\s?(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`)
	routeRe       = regexp.MustCompile(`(?i)from\s+([A-Za-z][A-Za-z ]*?)\s+to\s+([A-Za-z][A-Za-z ]*?)(?:\s+for\b|[,.]|$)`)
)

// fallbackExtract recovers trip parameters with regular expressions when no
// language model is available.
func (s *Service) fallbackExtract(request string) (*TripProfile, error) {
	profile := &TripProfile{
		TravelStyle:         StyleModerate,
		ExplicitConstraints: map[string]any{},
		ImplicitPreferences: map[string]any{},
	}

	dates := textualDateRe.FindAllString(request, -1)
	dates = append(dates, isoDateRe.FindAllString(request, -1)...)
	if len(dates) > 0 {
		if t, err := ParseDate(dates[0]); err == nil {
			profile.StartDate = t
		}
	}
	if len(dates) > 1 {
		if t, err := ParseDate(dates[1]); err == nil {
			profile.EndDate = t
		}
	} else {
		profile.EndDate = profile.StartDate
	}

	if m := budgetRe.FindStringSubmatch(request); m != nil {
		if v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64); err == nil {
			profile.Budget = v
		}
	}

	if m := routeRe.FindStringSubmatch(request); m != nil {
		profile.Origin = title(m[1])
		profile.Destination = title(m[2])
	}

	for _, style := range []TravelStyle{StyleLuxury, StyleBudget, StyleAdventure, StyleRelaxed} {
		if strings.Contains(strings.ToLower(request), string(style)) {
			profile.TravelStyle = style
			break
		}
	}

	return profile, nil
}

// enrich merges remembered tags from similar past trips, then records the
// request's own tags. All store failures are logged and absorbed.
func (s *Service) enrich(ctx context.Context, profile *TripProfile) {
	if s.enricher == nil || profile.Destination == "" {
		return
	}

	tags, err := s.enricher.SimilarPreferences(ctx, profile.Destination, profile.TravelStyle)
	if err != nil {
		log.Printf("preference: enrichment lookup failed: %v", err)
	} else {
		for _, tag := range tags {
			if tag != "" && !profile.HasPreference(tag) {
				profile.Preferences = append(profile.Preferences, tag)
			}
		}
	}

	if err := s.enricher.RememberPreferences(ctx, profile.Destination, profile.TravelStyle, profile.Preferences); err != nil {
		log.Printf("preference: could not remember preferences: %v", err)
	}
}

func title(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
