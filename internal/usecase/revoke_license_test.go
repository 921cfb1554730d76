package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/royalguard/activity-api/internal/domain/repository"
)

func TestRevokeLicenseUseCase_Execute_Success(t *testing.T) {
	mockRepo := new(MockLicenseRepository)
	uc := NewRevokeLicenseUseCase(mockRepo)

	mockRepo.On("DeleteLicense", mock.Anything, int64(7)).Return(nil)

	err := uc.Execute(context.Background(), RevokeLicenseInput{UserID: 7})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestRevokeLicenseUseCase_Execute_NotLicensed(t *testing.T) {
	mockRepo := new(MockLicenseRepository)
	uc := NewRevokeLicenseUseCase(mockRepo)

	mockRepo.On("DeleteLicense", mock.Anything, int64(7)).
		Return(repository.ErrLicenseNotFound)

	err := uc.Execute(context.Background(), RevokeLicenseInput{UserID: 7})

	assert.ErrorIs(t, err, ErrNotLicensed)
	mockRepo.AssertExpectations(t)
}

func TestRevokeLicenseUseCase_Execute_StoreError(t *testing.T) {
	mockRepo := new(MockLicenseRepository)
	uc := NewRevokeLicenseUseCase(mockRepo)

	mockRepo.On("DeleteLicense", mock.Anything, int64(7)).
		Return(errors.New("write failed"))

	err := uc.Execute(context.Background(), RevokeLicenseInput{UserID: 7})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotLicensed)
	mockRepo.AssertExpectations(t)
}
