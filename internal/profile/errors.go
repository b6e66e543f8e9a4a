package profile

import "errors"

var (
	// ErrNotFound means no profile exists for the user. For a brand-new
	// user this is the one fatal case: no session can start without a
	// profile.
	ErrNotFound = errors.New("profile not found")

	ErrAlreadyExists = errors.New("profile already exists")

	// ErrValidation covers malformed input such as a future LMP date.
	ErrValidation = errors.New("invalid profile input")
)
