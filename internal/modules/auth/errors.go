package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUserBlocked        = errors.New("account is blocked")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCodeFormat  = errors.New("verification code must be six digits")
	ErrInvalidCode        = errors.New("invalid or expired verification code")
	ErrTooManyAttempts    = errors.New("too many verification attempts")
	ErrRateLimited        = errors.New("verification code requested too recently")
)
