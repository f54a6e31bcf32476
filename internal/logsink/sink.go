// README: run log persistence. Every finished planning run is written as a
// timestamped JSON file plus rows in trip_data.csv, and mirrored to Postgres
// when a pool is configured. Database failures are logged and swallowed; the
// filesystem record is the source of truth.
package logsink

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"travelpro/internal/modules/planner"
)

var csvHeader = []string{
	"timestamp", "query", "error", "status",
	"day", "current_city", "transportation", "breakfast", "attraction",
	"lunch", "dinner", "accommodation", "daily_cost",
	"total_cost", "remaining_budget",
}

type Sink struct {
	dir  string
	pool *pgxpool.Pool
	now  func() time.Time

	mu sync.Mutex // serializes csv appends
}

func NewSink(dir string, pool *pgxpool.Pool) *Sink {
	return &Sink{dir: dir, pool: pool, now: time.Now}
}

// EnsureSchema creates the trip_logs table when a database is configured.
func (s *Sink) EnsureSchema(ctx context.Context) error {
	if s.pool == nil {
		return nil
	}
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS trip_logs (
			id BIGSERIAL PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL,
			query TEXT NOT NULL,
			status TEXT NOT NULL,
			error TEXT,
			payload JSONB NOT NULL
		)
	`)
	return err
}

// Record persists one finished run. It satisfies planner.Recorder.
func (s *Sink) Record(ctx context.Context, request string, out planner.Output) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create logs dir: %w", err)
	}
	now := s.now()

	if err := s.writeJSON(now, request, out); err != nil {
		return err
	}
	if err := s.appendCSV(now, request, out); err != nil {
		return err
	}

	if s.pool != nil {
		if err := s.insertRow(ctx, now, request, out); err != nil {
			log.Printf("logsink: database insert failed: %v", err)
		}
	}
	return nil
}

func (s *Sink) writeJSON(now time.Time, request string, out planner.Output) error {
	name := fmt.Sprintf("%s_%03d.json", now.Format("20060102_150405"), now.Nanosecond()/int(time.Millisecond))
	path := filepath.Join(s.dir, name)

	payload := struct {
		Timestamp string         `json:"timestamp"`
		Query     string         `json:"query"`
		Output    planner.Output `json:"output"`
	}{now.Format(time.RFC3339Nano), request, out}

	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run log: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write run log: %w", err)
	}
	return nil
}

// appendCSV writes one row per itinerary day, or a single error row. The
// summary columns are only filled on the last day row.
func (s *Sink) appendCSV(now time.Time, request string, out planner.Output) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, "trip_data.csv")
	_, statErr := os.Stat(path)
	fresh := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open trip csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if fresh {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("write csv header: %w", err)
		}
	}

	stamp := now.Format("2006-01-02 15:04:05")
	if out.Failed() {
		row := make([]string, len(csvHeader))
		row[0], row[1], row[2], row[3] = stamp, request, out.Err, string(out.Status)
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	} else {
		days := out.Itinerary.Days
		for i, day := range days {
			row := []string{
				stamp, request, "", "success",
				strconv.Itoa(day.Day), day.CurrentCity, day.Transportation,
				day.Breakfast, day.Attraction, day.Lunch, day.Dinner,
				day.Accommodation, formatAmount(day.DailyCost),
				"", "",
			}
			if i == len(days)-1 {
				row[13] = formatAmount(out.Itinerary.TotalEstimatedCost)
				row[14] = formatAmount(out.Itinerary.RemainingBudget)
			}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush trip csv: %w", err)
	}
	return nil
}

func (s *Sink) insertRow(ctx context.Context, now time.Time, request string, out planner.Output) error {
	raw, err := json.Marshal(out)
	if err != nil {
		return err
	}
	status := string(out.Status)
	var errMsg *string
	if out.Err != "" {
		errMsg = &out.Err
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO trip_logs (created_at, query, status, error, payload) VALUES ($1, $2, $3, $4, $5)`,
		now, request, status, errMsg, raw)
	return err
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
