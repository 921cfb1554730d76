package repository

import (
	"context"

	"github.com/royalguard/activity-api/internal/domain/model"
)

// GameLogRepository persists event logs keyed by fingerprint.
type GameLogRepository interface {
	// InsertLog stores a new log entry. Returns ErrDuplicateLog when an
	// entry with the same fingerprint is already stored.
	InsertLog(ctx context.Context, log *model.GameLog) error
}
