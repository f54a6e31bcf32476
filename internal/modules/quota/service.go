package quota

import "context"

// Service orchestrates planning-run quota logic.
type Service struct {
	store *Store
}

// NewService creates a Service backed by the given Store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// UseRun deducts one run from the user's monthly allowance.
// If the user row does not exist yet it is initialised and the run is immediately consumed.
// Returns ErrRunsExhausted when the quota for the current month is used up.
func (s *Service) UseRun(ctx context.Context, uid string) error {
	err := s.store.UseRun(ctx, uid)
	if err != ErrRunsExhausted {
		return err
	}

	// Row may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureUser(ctx, uid); initErr != nil {
		return initErr
	}
	return s.store.UseRun(ctx, uid)
}
