package clinic

import "errors"

var (
	ErrNotFound       = errors.New("clinic not found")
	ErrMemberNotFound = errors.New("clinic member not found")
	ErrNotAMember     = errors.New("user is not a member of this clinic")
)
