package usecase

import (
	"context"

	"github.com/royalguard/activity-api/internal/domain/repository"
)

// RecordActivityUseCase accumulates reported activity minutes per user.
type RecordActivityUseCase struct {
	activityRepo repository.ActivityRepository
}

// NewRecordActivityUseCase creates a new RecordActivityUseCase.
func NewRecordActivityUseCase(activityRepo repository.ActivityRepository) *RecordActivityUseCase {
	return &RecordActivityUseCase{activityRepo: activityRepo}
}

// RecordActivityInput is one activity report from the game server.
// Minutes carry whatever the game measured: negative corrections are
// accepted as-is, and repeated reports accumulate rather than replace.
type RecordActivityInput struct {
	UserID  int64
	Minutes int64
}

// Execute applies one activity increment. The repository performs a
// single atomic upsert-increment, so concurrent reports for the same
// user all apply.
func (uc *RecordActivityUseCase) Execute(ctx context.Context, input RecordActivityInput) error {
	return uc.activityRepo.IncrementActivity(ctx, input.UserID, input.Minutes)
}
