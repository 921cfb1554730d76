package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/royalguard/activity-api/internal/domain/model"
	"github.com/royalguard/activity-api/internal/domain/repository"
)

func TestFindLicense(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found decodes the stored license", func(mt *mtest.T) {
		db := mt.Client.Database("royalguard")
		repo := NewMongoLicenseRepository(db)

		issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, db.Name()+".licenses", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: int64(42)},
			{Key: "issued_by", Value: int64(1)},
			{Key: "issued_at", Value: primitive.NewDateTimeFromTime(issuedAt)},
		}))

		license, err := repo.FindLicense(context.Background(), 42)
		require.NoError(mt, err)
		assert.Equal(mt, int64(42), license.UserID)
		assert.Equal(mt, int64(1), license.IssuedBy)
		assert.WithinDuration(mt, issuedAt, license.IssuedAt, time.Millisecond)
	})

	mt.Run("absent reports ErrLicenseNotFound", func(mt *mtest.T) {
		db := mt.Client.Database("royalguard")
		repo := NewMongoLicenseRepository(db)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, db.Name()+".licenses", mtest.FirstBatch))

		license, err := repo.FindLicense(context.Background(), 42)
		assert.ErrorIs(mt, err, repository.ErrLicenseNotFound)
		assert.Nil(mt, license)
	})

	mt.Run("command error is wrapped", func(mt *mtest.T) {
		repo := NewMongoLicenseRepository(mt.Client.Database("royalguard"))
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11601,
			Name:    "Interrupted",
			Message: "operation was interrupted",
		}))

		license, err := repo.FindLicense(context.Background(), 42)
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, repository.ErrLicenseNotFound)
		assert.Nil(mt, license)
		assert.Contains(mt, err.Error(), "failed to find license")
	})
}

func TestCreateLicense(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("inserts keyed by user id", func(mt *mtest.T) {
		repo := NewMongoLicenseRepository(mt.Client.Database("royalguard"))
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		license := &model.License{
			UserID:   42,
			IssuedBy: 1,
			IssuedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		}
		err := repo.CreateLicense(context.Background(), license)
		require.NoError(mt, err)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "insert", evt.CommandName)

		docs, err := evt.Command.Lookup("documents").Array().Values()
		require.NoError(mt, err)
		require.Len(mt, docs, 1)
		assert.Equal(mt, int64(42), docs[0].Document().Lookup("_id").Int64())
		assert.Equal(mt, int64(1), docs[0].Document().Lookup("issued_by").Int64())
	})

	mt.Run("duplicate key reports ErrLicenseExists", func(mt *mtest.T) {
		repo := NewMongoLicenseRepository(mt.Client.Database("royalguard"))
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		err := repo.CreateLicense(context.Background(), &model.License{UserID: 42, IssuedBy: 1})
		assert.ErrorIs(mt, err, repository.ErrLicenseExists)
	})
}

func TestDeleteLicense(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("removes the license", func(mt *mtest.T) {
		repo := NewMongoLicenseRepository(mt.Client.Database("royalguard"))
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		err := repo.DeleteLicense(context.Background(), 42)
		require.NoError(mt, err)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "delete", evt.CommandName)
	})

	mt.Run("nothing deleted reports ErrLicenseNotFound", func(mt *mtest.T) {
		repo := NewMongoLicenseRepository(mt.Client.Database("royalguard"))
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.DeleteLicense(context.Background(), 42)
		assert.ErrorIs(mt, err, repository.ErrLicenseNotFound)
	})

	mt.Run("command error is wrapped", func(mt *mtest.T) {
		repo := NewMongoLicenseRepository(mt.Client.Database("royalguard"))
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11601,
			Name:    "Interrupted",
			Message: "operation was interrupted",
		}))

		err := repo.DeleteLicense(context.Background(), 42)
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, repository.ErrLicenseNotFound)
	})
}

func TestLicenseRepository_Unavailable(t *testing.T) {
	repo := NewMongoLicenseRepository(nil)

	_, err := repo.FindLicense(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrUnavailable)

	err = repo.CreateLicense(context.Background(), &model.License{UserID: 42})
	assert.ErrorIs(t, err, repository.ErrUnavailable)

	err = repo.DeleteLicense(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrUnavailable)
}
