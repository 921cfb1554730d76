package persistence

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/royalguard/activity-api/internal/domain/repository"
)

// MongoActivityRepository persists per-user activity totals.
type MongoActivityRepository struct {
	db *mongo.Database
}

// NewMongoActivityRepository creates a MongoDB-backed activity
// repository. A nil database is accepted and makes every call report
// repository.ErrUnavailable.
func NewMongoActivityRepository(db *mongo.Database) *MongoActivityRepository {
	return &MongoActivityRepository{db: db}
}

// IncrementActivity adds minutes to the user's running total in one
// atomic upsert. The first report for a user creates the document.
func (r *MongoActivityRepository) IncrementActivity(ctx context.Context, userID int64, minutes int64) error {
	if r.db == nil {
		return repository.ErrUnavailable
	}

	_, err := r.db.Collection(activityCollection).UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$inc": bson.M{"total_activity": minutes}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to increment activity: %w", err)
	}
	return nil
}
