package mcts

import "time"

// Limits bounds a single Search call. Fields that are zero (or
// negative) simply don't apply, a zero value Limits runs until
// the context is cancelled.
type Limits struct {
	// Maximum number of search iterations, <= 0 means unbounded
	Iterations int

	// Wall-clock budget for the search, <= 0 means unbounded
	Movetime time.Duration
}
