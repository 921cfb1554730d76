package repository

import "errors"

var (
	// ErrUnavailable is returned when the store was never connected and
	// no database handle exists.
	ErrUnavailable = errors.New("database not available")

	// ErrDuplicateLog is returned when a log with the same fingerprint
	// is already stored.
	ErrDuplicateLog = errors.New("duplicate log")

	// ErrLicenseExists is returned when inserting a license for a user
	// who already holds one.
	ErrLicenseExists = errors.New("license already exists")

	// ErrLicenseNotFound is returned when looking up or deleting a
	// license that does not exist.
	ErrLicenseNotFound = errors.New("license not found")
)
