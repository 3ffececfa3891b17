package appointment

import "errors"

var (
	ErrNotFound          = errors.New("appointment not found")
	ErrSlotTaken         = errors.New("requested time is no longer available")
	ErrAlreadyCompleted  = errors.New("appointment is already completed")
	ErrAlreadyCancelled  = errors.New("appointment is already cancelled")
	ErrNotSeries         = errors.New("appointment does not belong to a recurring series")
	ErrInvalidRecurrence = errors.New("recurrence end date must be after the first occurrence")
)
