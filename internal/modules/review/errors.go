package review

import "errors"

var (
	ErrHouseNotFound  = errors.New("house not found")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrInvalidTarget  = errors.New("report needs a house or a user target")
	ErrTargetNotFound = errors.New("report target not found")
)
