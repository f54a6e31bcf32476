package logsink

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"travelpro/internal/modules/itinerary"
	"travelpro/internal/modules/planner"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 9, 1, 10, 30, 0, 123*int(time.Millisecond), time.UTC)
	}
}

func successOutput() planner.Output {
	return planner.Output{
		Status: planner.StatusBudgetValidated,
		Itinerary: &itinerary.Itinerary{
			Days: []itinerary.DayPlan{
				{Day: 1, CurrentCity: "from Sarasota to Chicago", Breakfast: "Shore Diner, Sarasota", DailyCost: 430},
				{Day: 2, CurrentCity: "from Chicago to Sarasota", Dinner: "-", DailyCost: 215},
			},
			TotalEstimatedCost: 645,
			RemainingBudget:    1255,
		},
	}
}

func TestRecordWritesJSONFile(t *testing.T) {
	dir := t.TempDir()
	sink := NewSink(dir, nil)
	sink.now = fixedClock()

	if err := sink.Record(context.Background(), "Plan a trip", successOutput()); err != nil {
		t.Fatalf("Record: %v", err)
	}

	path := filepath.Join(dir, "20260901_103000_123.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected run log at %s: %v", path, err)
	}

	var payload struct {
		Timestamp string          `json:"timestamp"`
		Query     string          `json:"query"`
		Output    json.RawMessage `json:"output"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal run log: %v", err)
	}
	if payload.Query != "Plan a trip" {
		t.Errorf("query = %q", payload.Query)
	}
	var out map[string]json.RawMessage
	if err := json.Unmarshal(payload.Output, &out); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if _, ok := out["days"]; !ok {
		t.Errorf("output payload missing days: %s", payload.Output)
	}
}

func readCSV(t *testing.T, dir string) [][]string {
	t.Helper()
	f, err := os.Open(filepath.Join(dir, "trip_data.csv"))
	if err != nil {
		t.Fatalf("open trip_data.csv: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read trip_data.csv: %v", err)
	}
	return rows
}

func TestRecordAppendsDayRows(t *testing.T) {
	dir := t.TempDir()
	sink := NewSink(dir, nil)
	sink.now = fixedClock()

	if err := sink.Record(context.Background(), "Plan a trip", successOutput()); err != nil {
		t.Fatalf("Record: %v", err)
	}

	rows := readCSV(t, dir)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header plus 2 day rows", len(rows))
	}
	if rows[0][0] != "timestamp" || rows[0][14] != "remaining_budget" {
		t.Errorf("unexpected header: %v", rows[0])
	}

	first, last := rows[1], rows[2]
	if first[3] != "success" || first[4] != "1" {
		t.Errorf("first day row = %v", first)
	}
	if first[13] != "" {
		t.Errorf("total cost should only appear on the last row, got %q", first[13])
	}
	if last[13] != "645.00" || last[14] != "1255.00" {
		t.Errorf("last row summary = %q/%q", last[13], last[14])
	}
}

func TestRecordErrorRow(t *testing.T) {
	dir := t.TempDir()
	sink := NewSink(dir, nil)
	sink.now = fixedClock()

	out := planner.Output{
		Status: planner.StatusDateValidationFailed,
		Err:    "Date Validation Error: start date must be at least tomorrow",
	}
	if err := sink.Record(context.Background(), "trip yesterday", out); err != nil {
		t.Fatalf("Record: %v", err)
	}

	rows := readCSV(t, dir)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header plus 1 error row", len(rows))
	}
	row := rows[1]
	if row[2] == "" || row[3] != "date_validation_failed" {
		t.Errorf("error row = %v", row)
	}
	if row[4] != "" {
		t.Errorf("error row should have no day column, got %q", row[4])
	}
}

func TestRecordConcurrentAppends(t *testing.T) {
	dir := t.TempDir()
	sink := NewSink(dir, nil)

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sink.Record(context.Background(), "Plan a trip", successOutput()); err != nil {
				t.Errorf("Record: %v", err)
			}
		}()
	}
	wg.Wait()

	rows := readCSV(t, dir)
	// Header plus two day rows per run.
	if len(rows) != 1+2*workers {
		t.Errorf("rows = %d, want %d", len(rows), 1+2*workers)
	}
	for i, row := range rows {
		if len(row) != len(csvHeader) {
			t.Errorf("row %d has %d columns, want %d", i, len(row), len(csvHeader))
		}
	}
}
