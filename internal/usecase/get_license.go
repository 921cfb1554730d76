package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/royalguard/activity-api/internal/domain/repository"
)

// GetLicenseUseCase reports a user's license state.
type GetLicenseUseCase struct {
	licenseRepo repository.LicenseRepository
}

// NewGetLicenseUseCase creates a new GetLicenseUseCase.
func NewGetLicenseUseCase(licenseRepo repository.LicenseRepository) *GetLicenseUseCase {
	return &GetLicenseUseCase{licenseRepo: licenseRepo}
}

// GetLicenseInput identifies the user to look up.
type GetLicenseInput struct {
	UserID int64
}

// GetLicenseOutput is the license state. Absence is a valid result, not
// an error.
type GetLicenseOutput struct {
	HasLicense bool
	IssuedBy   int64
	IssuedAt   time.Time
}

// Execute looks up the user's license.
func (uc *GetLicenseUseCase) Execute(ctx context.Context, input GetLicenseInput) (*GetLicenseOutput, error) {
	license, err := uc.licenseRepo.FindLicense(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrLicenseNotFound) {
			return &GetLicenseOutput{HasLicense: false}, nil
		}
		return nil, err
	}

	return &GetLicenseOutput{
		HasLicense: true,
		IssuedBy:   license.IssuedBy,
		IssuedAt:   license.IssuedAt,
	}, nil
}
