package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"travelpro/internal/http/middleware"
	"travelpro/internal/infra"
	"travelpro/internal/modules/itinerary"
	"travelpro/internal/modules/planner"
	"travelpro/internal/modules/quota"
)

type stubPlanner struct {
	out      planner.Output
	requests []string
}

func (s *stubPlanner) ProcessRequest(_ context.Context, request string) planner.Output {
	s.requests = append(s.requests, request)
	return s.out
}

func buildTestRouter(p Planner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewTripHandler(p, nil)
	r.POST("/api/trips/plan", h.Plan)
	return r
}

func doPlanRequest(r *gin.Engine, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/trips/plan", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPlanSuccess(t *testing.T) {
	stub := &stubPlanner{out: planner.Output{
		Status: planner.StatusBudgetValidated,
		Itinerary: &itinerary.Itinerary{
			Days:               []itinerary.DayPlan{{Day: 1, CurrentCity: "from Sarasota to Chicago", DailyCost: 430}},
			TotalEstimatedCost: 980,
			RemainingBudget:    920,
		},
	}}
	r := buildTestRouter(stub)

	w := doPlanRequest(r, map[string]string{"request": "Plan a trip from Sarasota to Chicago"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Days            []json.RawMessage `json:"days"`
		TotalCost       float64           `json:"total_cost"`
		RemainingBudget float64           `json:"remaining_budget"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Days) != 1 || resp.TotalCost != 980 {
		t.Errorf("response = %s", w.Body.String())
	}
	if len(stub.requests) != 1 || stub.requests[0] != "Plan a trip from Sarasota to Chicago" {
		t.Errorf("planner saw requests %v", stub.requests)
	}
}

func TestPlanDateValidationFailure(t *testing.T) {
	stub := &stubPlanner{out: planner.Output{
		Status: planner.StatusDateValidationFailed,
		Err:    "Date Validation Error: start date must be at least tomorrow",
	}}
	r := buildTestRouter(stub)

	w := doPlanRequest(r, map[string]string{"request": "trip yesterday"})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	var resp struct {
		Error  string `json:"error"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Status != "date_validation_failed" || resp.Error == "" {
		t.Errorf("response = %s", w.Body.String())
	}
}

func TestPlanInternalError(t *testing.T) {
	stub := &stubPlanner{out: planner.Output{
		Status: planner.StatusError,
		Err:    "Error fetching costs: pricing api down",
	}}
	r := buildTestRouter(stub)

	w := doPlanRequest(r, map[string]string{"request": "anything"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

type stubQuota struct {
	err  error
	uids []string
}

func (s *stubQuota) UseRun(_ context.Context, uid string) error {
	s.uids = append(s.uids, uid)
	return s.err
}

func buildMeteredRouter(p Planner, q QuotaKeeper, verifier infra.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Auth(verifier))
	h := NewTripHandler(p, q)
	r.POST("/api/trips/plan", h.Plan)
	return r
}

type stubTokenVerifier struct {
	token *infra.FirebaseToken
}

func (s *stubTokenVerifier) VerifyIDToken(context.Context, string) (*infra.FirebaseToken, error) {
	return s.token, nil
}

func doAuthedPlanRequest(r *gin.Engine, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, "/api/trips/plan", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPlanQuotaExhausted(t *testing.T) {
	q := &stubQuota{err: quota.ErrRunsExhausted}
	stub := &stubPlanner{}
	verifier := &stubTokenVerifier{token: &infra.FirebaseToken{UID: "u7"}}
	r := buildMeteredRouter(stub, q, verifier)

	w := doAuthedPlanRequest(r, map[string]string{"request": "Plan a trip"})
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	if len(q.uids) != 1 || q.uids[0] != "u7" {
		t.Errorf("quota saw uids %v", q.uids)
	}
	if len(stub.requests) != 0 {
		t.Errorf("planner should not run when quota is exhausted")
	}
}

func TestPlanQuotaConsumedOnSuccess(t *testing.T) {
	q := &stubQuota{}
	stub := &stubPlanner{out: planner.Output{
		Status:    planner.StatusBudgetValidated,
		Itinerary: &itinerary.Itinerary{Days: []itinerary.DayPlan{{Day: 1}}},
	}}
	verifier := &stubTokenVerifier{token: &infra.FirebaseToken{UID: "u7"}}
	r := buildMeteredRouter(stub, q, verifier)

	w := doAuthedPlanRequest(r, map[string]string{"request": "Plan a trip"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if len(q.uids) != 1 {
		t.Errorf("quota calls = %d, want 1", len(q.uids))
	}
}

func TestPlanBadRequests(t *testing.T) {
	stub := &stubPlanner{}
	r := buildTestRouter(stub)

	if w := doPlanRequest(r, "{not json"); w.Code != http.StatusBadRequest {
		t.Errorf("malformed body: status = %d, want 400", w.Code)
	}
	if w := doPlanRequest(r, map[string]string{"request": "   "}); w.Code != http.StatusBadRequest {
		t.Errorf("blank request: status = %d, want 400", w.Code)
	}
	if len(stub.requests) != 0 {
		t.Errorf("planner should not run on bad input, saw %v", stub.requests)
	}
}
