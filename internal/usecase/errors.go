package usecase

import "errors"

// Domain errors. Services wrap these with context; handlers map them to HTTP
// status codes with errors.Is.
var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("admin access required")
	ErrInvalidPayload     = errors.New("invalid payload")
	ErrInvalidDate        = errors.New("booking date cannot be in the past")
	ErrMissingSchedule    = errors.New("missing schedule")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyProcessed   = errors.New("booking already processed")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
