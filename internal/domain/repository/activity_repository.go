package repository

import "context"

// ActivityRepository persists per-user activity totals.
type ActivityRepository interface {
	// IncrementActivity atomically adds minutes to the user's running
	// total, creating the record when absent. Minutes may be negative.
	IncrementActivity(ctx context.Context, userID int64, minutes int64) error
}
