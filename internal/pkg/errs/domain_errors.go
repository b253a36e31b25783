package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Inventory errors
	ErrCourseNotFound = errors.New("course not found")
	ErrNoSeats        = errors.New("no seats available")

	// Admin errors
	ErrUnauthorized       = errors.New("admin operation requires login")
	ErrInvalidCredentials = errors.New("invalid admin credentials")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Persistence errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)
