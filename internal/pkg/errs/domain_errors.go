package errs

import "errors"

// Sentinel markers shared by the usecase and handler layers
var (
	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrNotificationFailed      = errors.New("notification delivery failed")
)
