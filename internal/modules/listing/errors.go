package listing

import "errors"

var (
	ErrNotFound   = errors.New("house not found")
	ErrForbidden  = errors.New("not the owner of this house")
	ErrValidation = errors.New("validation error")
)
