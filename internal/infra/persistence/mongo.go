package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/royalguard/activity-api/internal/domain/repository"
	"github.com/royalguard/activity-api/internal/infra/config"
)

// Collection names shared with the Discord bot.
const (
	activityCollection = "activity"
	logCollection      = "roblox_logs"
	licenseCollection  = "licenses"
)

// Store owns the MongoDB client for the process lifetime. It is built
// once at startup and never reinitialized: when the initial connect or
// ping fails the store stays degraded, repositories report
// repository.ErrUnavailable, and health reports "disconnected" until
// the next deploy.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore connects to MongoDB and verifies the connection. On failure
// it returns a degraded store together with the error so the caller can
// log the problem and keep serving.
func NewStore(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return &Store{}, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return &Store{}, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Store{client: client, db: client.Database(cfg.Database)}, nil
}

// Database returns the database handle, nil when the store is degraded.
func (s *Store) Database() *mongo.Database {
	return s.db
}

// Connected reports whether the store holds a live database handle.
func (s *Store) Connected() bool {
	return s.db != nil
}

// Ping probes store reachability for health reporting by reading one
// document from the activity collection. An empty collection is
// healthy.
func (s *Store) Ping(ctx context.Context) error {
	if s.db == nil {
		return repository.ErrUnavailable
	}

	err := s.db.Collection(activityCollection).FindOne(ctx, bson.M{}).Err()
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	return nil
}

// EnsureIndexes creates the secondary index backing the bot's polling
// query for unprocessed logs. The dedup and license keys need no index
// of their own: _id is always unique.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	if s.db == nil {
		return repository.ErrUnavailable
	}

	_, err := s.db.Collection(logCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "processed", Value: 1},
			{Key: "created_at", Value: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create log index: %w", err)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
