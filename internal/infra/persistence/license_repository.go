package persistence

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/royalguard/activity-api/internal/domain/model"
	"github.com/royalguard/activity-api/internal/domain/repository"
)

// MongoLicenseRepository persists weapons licenses.
type MongoLicenseRepository struct {
	db *mongo.Database
}

// NewMongoLicenseRepository creates a MongoDB-backed license
// repository. A nil database is accepted and makes every call report
// repository.ErrUnavailable.
func NewMongoLicenseRepository(db *mongo.Database) *MongoLicenseRepository {
	return &MongoLicenseRepository{db: db}
}

// FindLicense returns the user's license, or
// repository.ErrLicenseNotFound when none exists.
func (r *MongoLicenseRepository) FindLicense(ctx context.Context, userID int64) (*model.License, error) {
	if r.db == nil {
		return nil, repository.ErrUnavailable
	}

	var license model.License
	err := r.db.Collection(licenseCollection).FindOne(ctx, bson.M{"_id": userID}).Decode(&license)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrLicenseNotFound
		}
		return nil, fmt.Errorf("failed to find license: %w", err)
	}
	return &license, nil
}

// CreateLicense inserts the license keyed by user ID. The unique _id
// index enforces one license per user: a concurrent insert for the
// same user reports repository.ErrLicenseExists.
func (r *MongoLicenseRepository) CreateLicense(ctx context.Context, license *model.License) error {
	if r.db == nil {
		return repository.ErrUnavailable
	}

	_, err := r.db.Collection(licenseCollection).InsertOne(ctx, license)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrLicenseExists
		}
		return fmt.Errorf("failed to create license: %w", err)
	}
	return nil
}

// DeleteLicense removes the user's license, reporting
// repository.ErrLicenseNotFound when there was none to remove.
func (r *MongoLicenseRepository) DeleteLicense(ctx context.Context, userID int64) error {
	if r.db == nil {
		return repository.ErrUnavailable
	}

	result, err := r.db.Collection(licenseCollection).DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete license: %w", err)
	}
	if result.DeletedCount == 0 {
		return repository.ErrLicenseNotFound
	}
	return nil
}
