package booking

import "errors"

var (
	ErrInvalidRange  = errors.New("invalid date range")
	ErrHouseNotFound = errors.New("house not found")
	ErrNotFound      = errors.New("booking not found")
	ErrDateConflict  = errors.New("dates conflict with an existing booking")
	ErrForbidden     = errors.New("not allowed to act on this booking")
)
