package types

import "errors"

// Failure taxonomy. Every operation-level failure maps onto one of these;
// none of them is fatal to the process.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("record not found")
	ErrForbidden          = errors.New("operation not allowed for this profile")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrEndBeforeStart     = errors.New("end date must not precede start date")
	ErrInvalidStatus      = errors.New("unknown status value")
	ErrInvalidType        = errors.New("unknown task type")
	ErrInvalidPriority    = errors.New("unknown task priority")
	ErrSubtaskNotFound    = errors.New("subtask not found")
	ErrEmailTaken         = errors.New("email already registered")
)
