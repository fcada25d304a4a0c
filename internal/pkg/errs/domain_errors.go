package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Study space errors
	ErrStudySpaceNotFound = errors.New("study space not found")
	ErrSeatsOutOfRange    = errors.New("available seats must be between 0 and total seats")
	ErrInvalidTotalSeats  = errors.New("total seats must be a positive number")

	// Booking errors
	ErrNotEnoughSeats = errors.New("not enough seats available for booking")

	// Review errors
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// User errors
	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateEmail    = errors.New("email already registered")

	// Admin errors
	ErrInvalidAdminSecret = errors.New("invalid admin password")
)
