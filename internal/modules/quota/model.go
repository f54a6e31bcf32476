package quota

import "errors"

// ErrRunsExhausted is returned when a user has no planning runs remaining for the current month.
var ErrRunsExhausted = errors.New("monthly planning quota exhausted")

// DefaultRuns is the number of planning runs granted per month.
const DefaultRuns = 50
