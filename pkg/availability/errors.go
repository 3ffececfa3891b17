package availability

import "errors"

var (
	ErrInvalidPolicy   = errors.New("invalid working-hours policy")
	ErrInvalidDuration = errors.New("session duration must be positive")
)
