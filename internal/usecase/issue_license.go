package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/royalguard/activity-api/internal/domain/model"
	"github.com/royalguard/activity-api/internal/domain/repository"
)

// IssueLicenseUseCase grants a license to a user who has none.
type IssueLicenseUseCase struct {
	licenseRepo repository.LicenseRepository
}

// NewIssueLicenseUseCase creates a new IssueLicenseUseCase.
func NewIssueLicenseUseCase(licenseRepo repository.LicenseRepository) *IssueLicenseUseCase {
	return &IssueLicenseUseCase{licenseRepo: licenseRepo}
}

// IssueLicenseInput identifies the user and the issuing authority.
type IssueLicenseInput struct {
	UserID   int64
	IssuedBy int64
}

// IssueLicenseOutput carries the server-assigned issuance time.
type IssueLicenseOutput struct {
	IssuedAt time.Time
}

// Execute issues a license. The insert is keyed by user id, so when two
// issues race the store admits exactly one and the loser also reports
// ErrAlreadyLicensed.
func (uc *IssueLicenseUseCase) Execute(ctx context.Context, input IssueLicenseInput) (*IssueLicenseOutput, error) {
	// Reject early when the user already holds a license.
	_, err := uc.licenseRepo.FindLicense(ctx, input.UserID)
	if err == nil {
		return nil, ErrAlreadyLicensed
	}
	if !errors.Is(err, repository.ErrLicenseNotFound) {
		return nil, err
	}

	license := &model.License{
		UserID:   input.UserID,
		IssuedBy: input.IssuedBy,
		IssuedAt: time.Now().UTC(),
	}

	if err := uc.licenseRepo.CreateLicense(ctx, license); err != nil {
		// A concurrent issue may still win the keyed insert.
		if errors.Is(err, repository.ErrLicenseExists) {
			return nil, ErrAlreadyLicensed
		}
		return nil, err
	}

	return &IssueLicenseOutput{IssuedAt: license.IssuedAt}, nil
}
