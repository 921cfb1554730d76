package usecase

import (
	"context"
	"errors"

	"github.com/royalguard/activity-api/internal/domain/repository"
)

// RevokeLicenseUseCase removes a user's license.
type RevokeLicenseUseCase struct {
	licenseRepo repository.LicenseRepository
}

// NewRevokeLicenseUseCase creates a new RevokeLicenseUseCase.
func NewRevokeLicenseUseCase(licenseRepo repository.LicenseRepository) *RevokeLicenseUseCase {
	return &RevokeLicenseUseCase{licenseRepo: licenseRepo}
}

// RevokeLicenseInput identifies the user whose license is revoked.
type RevokeLicenseInput struct {
	UserID int64
}

// Execute revokes the user's license. The delete itself decides whether
// a license existed, so there is no separate existence check to race.
func (uc *RevokeLicenseUseCase) Execute(ctx context.Context, input RevokeLicenseInput) error {
	if err := uc.licenseRepo.DeleteLicense(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrLicenseNotFound) {
			return ErrNotLicensed
		}
		return err
	}
	return nil
}
