package persistence

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/royalguard/activity-api/internal/domain/model"
	"github.com/royalguard/activity-api/internal/domain/repository"
)

// MongoGameLogRepository persists deduplicated game logs.
type MongoGameLogRepository struct {
	db *mongo.Database
}

// NewMongoGameLogRepository creates a MongoDB-backed game log
// repository. A nil database is accepted and makes every call report
// repository.ErrUnavailable.
func NewMongoGameLogRepository(db *mongo.Database) *MongoGameLogRepository {
	return &MongoGameLogRepository{db: db}
}

// InsertLog stores the log keyed by its fingerprint. The unique _id
// index is the dedup check: a second insert with the same fingerprint
// reports repository.ErrDuplicateLog.
func (r *MongoGameLogRepository) InsertLog(ctx context.Context, log *model.GameLog) error {
	if r.db == nil {
		return repository.ErrUnavailable
	}

	_, err := r.db.Collection(logCollection).InsertOne(ctx, log)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateLog
		}
		return fmt.Errorf("failed to insert log: %w", err)
	}
	return nil
}
