package preference

import (
	"context"
	"errors"
	"testing"
	"time"

	"travelpro/internal/ai"
)

type stubLLM struct {
	result *ai.ExtractionResult
	err    error
	calls  int
}

func (s *stubLLM) ExtractTripProfile(_ context.Context, _ string, _ time.Time) (*ai.ExtractionResult, error) {
	s.calls++
	return s.result, s.err
}

type stubEnricher struct {
	similar     []string
	similarErr  error
	rememberErr error
	remembered  []string
}

func (s *stubEnricher) SimilarPreferences(_ context.Context, _ string, _ TravelStyle) ([]string, error) {
	return s.similar, s.similarErr
}

func (s *stubEnricher) RememberPreferences(_ context.Context, _ string, _ TravelStyle, tags []string) error {
	s.remembered = tags
	return s.rememberErr
}

func fixedNow() time.Time {
	return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
}

func TestExtractFallbackRegex(t *testing.T) {
	svc := NewService(nil, nil)
	svc.now = fixedNow

	request := "Plan a trip from Sarasota to Chicago, from June 10th, 2027 to June 12th, 2027, with a budget of $1,900 and luxury travel style."
	p, err := svc.Extract(context.Background(), request)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if p.Origin != "Sarasota" || p.Destination != "Chicago" {
		t.Errorf("route = %q -> %q", p.Origin, p.Destination)
	}
	if p.Budget != 1900 {
		t.Errorf("budget = %f, want 1900", p.Budget)
	}
	if p.TravelStyle != StyleLuxury {
		t.Errorf("style = %s, want luxury", p.TravelStyle)
	}
	if p.StartDate != time.Date(2027, 6, 10, 0, 0, 0, 0, time.UTC) {
		t.Errorf("start = %v", p.StartDate)
	}
	if p.EndDate != time.Date(2027, 6, 12, 0, 0, 0, 0, time.UTC) {
		t.Errorf("end = %v", p.EndDate)
	}
	if p.Days() != 3 {
		t.Errorf("days = %d, want 3", p.Days())
	}
}

func TestExtractLLMResult(t *testing.T) {
	llm := &stubLLM{result: &ai.ExtractionResult{
		Origin:      "Sarasota",
		Destination: "Paris",
		StartDate:   "2027-04-01",
		EndDate:     "2027-04-05",
		Budget:      3200,
		TravelStyle: "Luxury",
		Preferences: []string{"art", "wine"},
	}}
	svc := NewService(llm, nil)
	svc.now = fixedNow

	p, err := svc.Extract(context.Background(), "five days of art and wine in Paris")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if llm.calls != 1 {
		t.Errorf("llm calls = %d, want 1", llm.calls)
	}
	if p.Destination != "Paris" || p.TravelStyle != StyleLuxury {
		t.Errorf("profile = %+v", p)
	}
	if len(p.Preferences) != 2 {
		t.Errorf("preferences = %v", p.Preferences)
	}
}

func TestExtractLLMFailureFallsBack(t *testing.T) {
	llm := &stubLLM{err: errors.New("quota exceeded")}
	svc := NewService(llm, nil)
	svc.now = fixedNow

	p, err := svc.Extract(context.Background(), "Plan a trip from Sarasota to Chicago, from June 10th, 2027 to June 12th, 2027, with a budget of $500.")
	if err != nil {
		t.Fatalf("Extract should fall back, got: %v", err)
	}
	if p.Destination != "Chicago" || p.Budget != 500 {
		t.Errorf("fallback profile = %+v", p)
	}
}

func TestExtractRejectsPastDates(t *testing.T) {
	llm := &stubLLM{result: &ai.ExtractionResult{
		Origin:      "Sarasota",
		Destination: "Chicago",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-03",
		Budget:      1000,
	}}
	svc := NewService(llm, nil)
	svc.now = fixedNow

	_, err := svc.Extract(context.Background(), "a trip last year")
	if !errors.Is(err, ErrDateValidation) {
		t.Fatalf("expected ErrDateValidation, got %v", err)
	}
}

func TestExtractRejectsTodayAcceptsTomorrow(t *testing.T) {
	build := func(start, end string) *stubLLM {
		return &stubLLM{result: &ai.ExtractionResult{
			Origin: "Sarasota", Destination: "Chicago",
			StartDate: start, EndDate: end, Budget: 1000,
		}}
	}

	svc := NewService(build("2026-09-01", "2026-09-03"), nil)
	svc.now = fixedNow
	if _, err := svc.Extract(context.Background(), "starting today"); !errors.Is(err, ErrDateValidation) {
		t.Errorf("today should fail, got %v", err)
	}

	svc = NewService(build("2026-09-02", "2026-09-04"), nil)
	svc.now = fixedNow
	if _, err := svc.Extract(context.Background(), "starting tomorrow"); err != nil {
		t.Errorf("tomorrow should pass, got %v", err)
	}
}

func TestExtractMissingDestination(t *testing.T) {
	llm := &stubLLM{result: &ai.ExtractionResult{
		StartDate: "2026-10-01",
		EndDate:   "2026-10-03",
		Budget:    1000,
	}}
	svc := NewService(llm, nil)
	svc.now = fixedNow

	_, err := svc.Extract(context.Background(), "somewhere nice")
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}
}

func TestExtractEnrichmentMerge(t *testing.T) {
	llm := &stubLLM{result: &ai.ExtractionResult{
		Origin:      "Sarasota",
		Destination: "Chicago",
		StartDate:   "2026-10-01",
		EndDate:     "2026-10-03",
		Budget:      1500,
		Preferences: []string{"Museums"},
	}}
	enricher := &stubEnricher{similar: []string{"museums", "deep dish pizza", ""}}
	svc := NewService(llm, enricher)
	svc.now = fixedNow

	p, err := svc.Extract(context.Background(), "a museum trip")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	// "museums" is already present (case-insensitive); only the new tag merges.
	if len(p.Preferences) != 2 || p.Preferences[1] != "deep dish pizza" {
		t.Errorf("preferences = %v", p.Preferences)
	}
	if len(enricher.remembered) != 2 {
		t.Errorf("remembered = %v", enricher.remembered)
	}
}

func TestExtractEnrichmentFailuresAbsorbed(t *testing.T) {
	llm := &stubLLM{result: &ai.ExtractionResult{
		Origin:      "Sarasota",
		Destination: "Chicago",
		StartDate:   "2026-10-01",
		EndDate:     "2026-10-03",
		Budget:      1500,
	}}
	enricher := &stubEnricher{similarErr: errors.New("redis down"), rememberErr: errors.New("redis down")}
	svc := NewService(llm, enricher)
	svc.now = fixedNow

	if _, err := svc.Extract(context.Background(), "a trip"); err != nil {
		t.Fatalf("enrichment failures must not fail extraction: %v", err)
	}
}
