package request

import "errors"

var (
	ErrNotFound              = errors.New("appointment request not found")
	ErrAlreadyDecided        = errors.New("appointment request is already decided")
	ErrSlotNoLongerAvailable = errors.New("requested time is no longer available")
	ErrInvalidRequestedStart = errors.New("requested start must be in the future")
)
