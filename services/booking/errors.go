package booking

import "errors"

var (
	// ErrSessionNotFound is returned when a session id is unknown or expired.
	ErrSessionNotFound = errors.New("booking session not found or expired")
	// ErrInvalidTransition is returned when an operation is not allowed on
	// the session's current step.
	ErrInvalidTransition = errors.New("operation not allowed on current step")
	// ErrUnknownService is returned when a service id is not in the catalog.
	ErrUnknownService = errors.New("unknown service")
	// ErrUnknownQuestion is returned when a question id does not belong to
	// the selected service.
	ErrUnknownQuestion = errors.New("unknown diagnostic question")
	// ErrInvalidAnswer is returned when an answer does not match the
	// question's type or options.
	ErrInvalidAnswer = errors.New("answer does not match question")
	// ErrInvalidSchedule is returned when the chosen date or time slot is
	// not among the offered candidates.
	ErrInvalidSchedule = errors.New("invalid date or time slot")
)
