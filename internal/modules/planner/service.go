// README: planning workflow orchestration. Runs the pipeline
// extract -> fetch costs -> propose -> validate, looping back to propose with
// the validator's suggestions while the budget is exceeded and attempts
// remain. The run always finalizes: a plan that still busts the budget after
// the last attempt ships as best effort.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log"

	"travelpro/internal/modules/budget"
	"travelpro/internal/modules/itinerary"
	"travelpro/internal/modules/preference"
)

const DefaultMaxReoptAttempts = 3

type Extractor interface {
	Extract(ctx context.Context, request string) (*preference.TripProfile, error)
}

type Estimator interface {
	FetchBaseline(ctx context.Context, p *preference.TripProfile) (budget.Breakdown, error)
}

type Builder interface {
	Build(ctx context.Context, p *preference.TripProfile, bd budget.Breakdown, constraints map[string]budget.Suggestion) (*itinerary.Itinerary, error)
}

type Validator interface {
	Validate(p *preference.TripProfile, b budget.Breakdown, totalCost float64) budget.ValidationResult
}

// Recorder persists finished runs. Failures are logged and swallowed; a run
// never fails because its record could not be written.
type Recorder interface {
	Record(ctx context.Context, request string, out Output) error
}

type Service struct {
	extractor   Extractor
	estimator   Estimator
	builder     Builder
	validator   Validator
	recorder    Recorder
	maxAttempts int
}

func NewService(extractor Extractor, estimator Estimator, builder Builder, validator Validator, recorder Recorder, maxAttempts int) *Service {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxReoptAttempts
	}
	return &Service{
		extractor:   extractor,
		estimator:   estimator,
		builder:     builder,
		validator:   validator,
		recorder:    recorder,
		maxAttempts: maxAttempts,
	}
}

// runState carries the workflow state between nodes.
type runState struct {
	request     string
	profile     *preference.TripProfile
	breakdown   budget.Breakdown
	itin        *itinerary.Itinerary
	constraints map[string]budget.Suggestion
	attempts    int
	status      Status
	err         string
}

func (st *runState) to(next Status) {
	if !CanTransition(st.status, next) {
		log.Printf("planner: unexpected transition %s -> %s", st.status, next)
	}
	st.status = next
}

// ProcessRequest runs the full planning workflow for a natural language trip
// request and returns the result payload.
func (s *Service) ProcessRequest(ctx context.Context, request string) Output {
	st := &runState{request: request, status: StatusInitialized}

	s.extractNode(ctx, st)
	if st.status == StatusPreferencesExtracted {
		s.fetchCostsNode(ctx, st)
	}
	if st.status == StatusCostsFetched {
		for {
			s.proposeNode(ctx, st)
			if st.status != StatusItineraryProposed {
				break
			}
			s.validateNode(st)
			if st.status == StatusBudgetExceeded && st.attempts < s.maxAttempts {
				continue
			}
			break
		}
	}

	// The error payload reports the status the run failed in, captured
	// before the terminal transition.
	finalStatus := st.status
	if CanTransition(st.status, StatusCompleted) {
		st.to(StatusCompleted)
	}

	out := Output{Status: finalStatus, Err: st.err, Itinerary: st.itin}
	if s.recorder != nil {
		if err := s.recorder.Record(ctx, request, out); err != nil {
			log.Printf("planner: could not record run: %v", err)
		}
	}
	return out
}

func (s *Service) extractNode(ctx context.Context, st *runState) {
	st.to(StatusExtractingPreferences)
	profile, err := s.extractor.Extract(ctx, st.request)
	if err != nil {
		if errors.Is(err, preference.ErrDateValidation) {
			st.err = fmt.Sprintf("Date Validation Error: %v\n\nPlease provide a new travel request with dates in the future (at least tomorrow).", err)
			st.to(StatusDateValidationFailed)
			return
		}
		st.err = fmt.Sprintf("Error extracting preferences: %v", err)
		st.to(StatusError)
		return
	}
	st.profile = profile
	st.to(StatusPreferencesExtracted)
}

func (s *Service) fetchCostsNode(ctx context.Context, st *runState) {
	st.to(StatusFetchingCosts)
	breakdown, err := s.estimator.FetchBaseline(ctx, st.profile)
	if err != nil {
		st.err = fmt.Sprintf("Error fetching costs: %v", err)
		st.to(StatusError)
		return
	}
	st.breakdown = breakdown
	st.to(StatusCostsFetched)
}

func (s *Service) proposeNode(ctx context.Context, st *runState) {
	st.to(StatusProposingItinerary)
	itin, err := s.builder.Build(ctx, st.profile, st.breakdown, st.constraints)
	if err != nil {
		st.err = fmt.Sprintf("Error proposing itinerary: %v", err)
		st.to(StatusError)
		return
	}
	st.itin = itin
	st.to(StatusItineraryProposed)
}

func (s *Service) validateNode(st *runState) {
	st.to(StatusValidatingBudget)
	result := s.validator.Validate(st.profile, st.breakdown, st.itin.TotalEstimatedCost)
	if result.Valid {
		st.to(StatusBudgetValidated)
		return
	}
	st.constraints = result.Suggestions
	st.attempts++
	st.to(StatusBudgetExceeded)
}
