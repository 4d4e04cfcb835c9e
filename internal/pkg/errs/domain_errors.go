package errs

import "errors"

// Sentinel errors shared by the booking, inventory and account layers.
// Handlers map each one to a stable HTTP error code.
var (
	// Date and stay errors
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidDateRange  = errors.New("invalid date range")

	// Inventory errors
	ErrRoomTypeNotFound = errors.New("room type not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrCapacityExceeded = errors.New("room no longer available")

	// Booking errors
	ErrBookingNotFound         = errors.New("booking not found")
	ErrBookingAlreadyCancelled = errors.New("booking already cancelled")
	ErrCodeSpaceExhausted      = errors.New("booking code space exhausted")

	// Account errors
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrUserNotFound           = errors.New("user not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
