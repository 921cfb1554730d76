package repository

import (
	"context"

	"github.com/royalguard/activity-api/internal/domain/model"
)

// LicenseRepository persists license records keyed by user id.
type LicenseRepository interface {
	// FindLicense returns the user's license, or ErrLicenseNotFound.
	FindLicense(ctx context.Context, userID int64) (*model.License, error)

	// CreateLicense stores a new license. Returns ErrLicenseExists when
	// the user already holds one, including when a concurrent issue won
	// the insert.
	CreateLicense(ctx context.Context, license *model.License) error

	// DeleteLicense removes the user's license. Returns
	// ErrLicenseNotFound when none exists.
	DeleteLicense(ctx context.Context, userID int64) error
}
