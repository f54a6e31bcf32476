package quota

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles plan_quota persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the plan_quota table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS plan_quota (
			uid TEXT PRIMARY KEY,
			runs_remaining INT NOT NULL DEFAULT 50,
			last_reset_month TEXT NOT NULL DEFAULT to_char(now(), 'YYYY-MM')
		)
	`)
	return err
}

// UseRun atomically checks the monthly quota and deducts one run.
// It resets the counter to DefaultRuns when last_reset_month is behind the current month.
// Returns ErrRunsExhausted when 0 rows are updated (quota exhausted or user absent).
func (s *Store) UseRun(ctx context.Context, uid string) error {
	now := time.Now().Format("2006-01")

	tag, err := s.db.Exec(ctx, `
		UPDATE plan_quota SET
			runs_remaining = CASE WHEN last_reset_month != $1 THEN $2 - 1 ELSE runs_remaining - 1 END,
			last_reset_month = $1
		WHERE uid = $3 AND (last_reset_month < $1 OR runs_remaining > 0)
	`, now, DefaultRuns, uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRunsExhausted
	}
	return nil
}

// EnsureUser inserts a new plan_quota row for uid with the default allowance.
// If the row already exists the insert is silently skipped (ON CONFLICT DO NOTHING).
func (s *Store) EnsureUser(ctx context.Context, uid string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO plan_quota (uid, runs_remaining, last_reset_month)
		VALUES ($1, $2, $3)
		ON CONFLICT (uid) DO NOTHING
	`, uid, DefaultRuns, time.Now().Format("2006-01"))
	return err
}
