package payment

import "errors"

var (
	ErrNotFound         = errors.New("no pending payment for this booking")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrAlreadyFinalized = errors.New("payment already finalized")
	ErrInvalidMethod    = errors.New("unknown payment method")
	ErrForbidden        = errors.New("not allowed to act on this payment")
)
