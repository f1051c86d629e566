package domain

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	// Reserved, not reachable through any current flow.
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	MethodCreditCard   PaymentMethod = "credit_card"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodCash         PaymentMethod = "cash"
	// MethodQR settles asynchronously and stays pending until an explicit
	// confirmation call.
	MethodQR PaymentMethod = "qr"
)

// Payment is owned 1:1 by its booking and shares its lifetime: cancelling
// the booking removes the payment row rather than transitioning it.
type Payment struct {
	ID        int64         `json:"id"`
	BookingID int64         `json:"booking_id" gorm:"uniqueIndex;not null"`
	Method    PaymentMethod `json:"method,omitempty" gorm:"size:50"`
	Amount    float64       `json:"amount"`
	Status    PaymentStatus `json:"status" gorm:"size:20;default:'pending';index"`
	Reference string        `json:"reference,omitempty" gorm:"size:64"`
	PaidAt    *time.Time    `json:"paid_at,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
