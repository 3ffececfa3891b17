package scheduling

import "errors"

var (
	ErrInvalidWorkingHours = errors.New("invalid working hours")
	ErrInvalidDuration     = errors.New("invalid session duration")
	ErrInvalidDateRange    = errors.New("to must not be before from")
)
