package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/royalguard/activity-api/internal/domain/model"
	"github.com/royalguard/activity-api/internal/domain/repository"
)

// LogEventPublisher delivers stored-log notifications to downstream
// consumers.
type LogEventPublisher interface {
	Publish(ctx context.Context, log *model.GameLog) error
}

// IngestLogUseCase stores event logs exactly once per fingerprint.
type IngestLogUseCase struct {
	logRepo   repository.GameLogRepository
	publisher LogEventPublisher
}

// NewIngestLogUseCase creates a new IngestLogUseCase.
func NewIngestLogUseCase(logRepo repository.GameLogRepository, publisher LogEventPublisher) *IngestLogUseCase {
	return &IngestLogUseCase{
		logRepo:   logRepo,
		publisher: publisher,
	}
}

// IngestLogInput is one log submission from the game server. Timestamp
// is stored exactly as received and never participates in dedup.
type IngestLogInput struct {
	LogType   string
	LogData   map[string]any
	Timestamp any
}

// IngestLogOutput reports whether the entry was stored or already known.
type IngestLogOutput struct {
	Fingerprint string
	Duplicate   bool
}

// Execute stores the log unless an entry with the same fingerprint
// already exists. Redelivery is a successful no-op, never an error: the
// store's uniqueness guarantee on the fingerprint id decides, so two
// identical submissions racing each other still store exactly one entry.
func (uc *IngestLogUseCase) Execute(ctx context.Context, input IngestLogInput) (*IngestLogOutput, error) {
	log := &model.GameLog{
		Fingerprint: model.LogFingerprint(input.LogType, input.LogData),
		LogType:     input.LogType,
		LogData:     input.LogData,
		Timestamp:   input.Timestamp,
		Processed:   false,
		CreatedAt:   time.Now().UTC(),
	}

	if err := uc.logRepo.InsertLog(ctx, log); err != nil {
		if errors.Is(err, repository.ErrDuplicateLog) {
			return &IngestLogOutput{Fingerprint: log.Fingerprint, Duplicate: true}, nil
		}
		return nil, err
	}

	// Notify downstream consumers (errors are ignored, the log is stored).
	if uc.publisher != nil {
		_ = uc.publisher.Publish(ctx, log)
	}

	return &IngestLogOutput{Fingerprint: log.Fingerprint}, nil
}
