package notify

import (
	"context"
	"log"
)

// Notification is a delivery request handed to an external collaborator.
// The core never sends mail itself.
type Notification struct {
	Recipient string
	Template  string
	Data      map[string]string
}

const (
	TemplateBookingCancelled = "booking_cancelled"
	TemplatePaymentCompleted = "payment_completed"
	TemplateVerificationCode = "verification_code"
)

type Sender interface {
	Send(ctx context.Context, n Notification) error
}

// ConsoleSender echoes notification requests to the log. Used in local
// development and tests instead of a real delivery channel.
type ConsoleSender struct {
	enabled bool
}

func NewConsoleSender(enabled bool) *ConsoleSender {
	return &ConsoleSender{enabled: enabled}
}

func (s *ConsoleSender) Send(_ context.Context, n Notification) error {
	if s.enabled {
		log.Printf("[NOTIFY] recipient=%s template=%s data=%v", n.Recipient, n.Template, n.Data)
	}
	return nil
}
