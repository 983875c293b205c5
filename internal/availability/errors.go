package availability

import "errors"

var (
	// ErrInvalidDuration the service duration is not positive
	ErrInvalidDuration = errors.New("availability: invalid service duration")

	// ErrInvalidRange the end date precedes the start date
	ErrInvalidRange = errors.New("availability: invalid date range")

	// ErrRead a collaborator failed to return schedule data
	ErrRead = errors.New("availability: failed to read schedule data")
)
