package errors

import (
	"errors"
)

var (
	// Validation
	ErrMissingLocation = errors.New("missing location data")

	// Conflict
	ErrAlreadyCheckedIn = errors.New("already checked in")
	ErrUsernameTaken    = errors.New("username already exists")
	ErrEmailTaken       = errors.New("email already exists")

	// Not found
	ErrNoActiveCheckIn = errors.New("no active check-in found")
	ErrUserNotFound    = errors.New("user not found")

	// Authorization
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminRequired      = errors.New("admin privileges required")
	ErrSelfDemotion       = errors.New("cannot remove admin status from yourself")
)
