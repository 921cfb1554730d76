package usecase

import "errors"

var (
	// ErrAlreadyLicensed is returned when issuing a license to a user
	// who already holds one.
	ErrAlreadyLicensed = errors.New("user already has a license")

	// ErrNotLicensed is returned when revoking a license from a user
	// who does not hold one.
	ErrNotLicensed = errors.New("user does not have a license")
)
