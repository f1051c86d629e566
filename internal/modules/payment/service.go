package payment

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	"homelet/internal/domain"
	"homelet/internal/modules/listing"
	"homelet/internal/pkg/notify"
	"homelet/internal/repository"
)

// Service walks a payment through its one transition, pending to
// completed. Cancellation never reaches here: it deletes the payment row
// together with its booking. Failed and refunded exist in the model but
// no flow produces them.
type Service struct {
	store     *repository.Store
	projector *listing.Projector
	notifs    notify.Sender
}

func NewService(store *repository.Store, projector *listing.Projector, notifs notify.Sender) *Service {
	return &Service{
		store:     store,
		projector: projector,
		notifs:    notifs,
	}
}

// RecordMethod sets the payment method on the booking's pending payment,
// creating the payment if booking creation somehow left none behind.
// Every method except QR settles synchronously and completes on the spot;
// QR stays pending until ConfirmPending.
func (s *Service) RecordMethod(ctx context.Context, bookingID int64, requesterEmail string, method domain.PaymentMethod) (*domain.Payment, error) {
	switch method {
	case domain.MethodCreditCard, domain.MethodBankTransfer, domain.MethodCash, domain.MethodQR:
	default:
		return nil, ErrInvalidMethod
	}

	var out *domain.Payment
	err := s.store.Atomic(ctx, func(tx *repository.Store) error {
		b, err := tx.GetBooking(ctx, bookingID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if b.TenantEmail != requesterEmail {
			return ErrForbidden
		}

		p, err := tx.GetPaymentByBookingID(ctx, bookingID)
		if errors.Is(err, repository.ErrNotFound) {
			p = &domain.Payment{
				BookingID: bookingID,
				Amount:    b.TotalPrice,
				Status:    domain.PaymentPending,
				Reference: uuid.NewString(),
			}
			if err := tx.CreatePayment(ctx, p); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if p.Status != domain.PaymentPending {
			return ErrAlreadyFinalized
		}

		p.Method = method
		p.Amount = b.TotalPrice
		if method != domain.MethodQR {
			now := time.Now().UTC()
			p.Status = domain.PaymentCompleted
			p.PaidAt = &now
		}
		if err := tx.UpdatePayment(ctx, p); err != nil {
			return err
		}

		if p.Status == domain.PaymentCompleted {
			if err := s.projector.Recompute(ctx, tx, b.HouseID); err != nil {
				return err
			}
		}

		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	if out.Status == domain.PaymentCompleted {
		s.notifyCompleted(ctx, requesterEmail, out)
	}
	return out, nil
}

// ConfirmPending finalizes a deferred (QR) settlement. Only a pending
// payment can be confirmed; confirming twice reports the payment as
// already finalized and changes nothing.
func (s *Service) ConfirmPending(ctx context.Context, bookingID int64, requesterEmail string) (*domain.Payment, error) {
	var out *domain.Payment
	err := s.store.Atomic(ctx, func(tx *repository.Store) error {
		b, err := tx.GetBooking(ctx, bookingID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if b.TenantEmail != requesterEmail {
			return ErrForbidden
		}

		p, err := tx.GetPaymentByBookingID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		if p.Status != domain.PaymentPending {
			return ErrAlreadyFinalized
		}

		now := time.Now().UTC()
		if err := tx.MarkPaymentCompleted(ctx, bookingID, now); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrAlreadyFinalized
			}
			return err
		}
		p.Status = domain.PaymentCompleted
		p.PaidAt = &now

		if err := s.projector.Recompute(ctx, tx, b.HouseID); err != nil {
			return err
		}

		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyCompleted(ctx, requesterEmail, out)
	return out, nil
}

func (s *Service) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	p, err := s.store.GetPaymentByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) notifyCompleted(ctx context.Context, recipient string, p *domain.Payment) {
	if s.notifs == nil {
		return
	}
	_ = s.notifs.Send(ctx, notify.Notification{
		Recipient: recipient,
		Template:  notify.TemplatePaymentCompleted,
		Data: map[string]string{
			"booking_id": strconv.FormatInt(p.BookingID, 10),
			"amount":     strconv.FormatFloat(p.Amount, 'f', 2, 64),
			"reference":  p.Reference,
		},
	})
}
