package booking

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"homelet/internal/domain"
	"homelet/internal/modules/availability"
	"homelet/internal/modules/listing"
	"homelet/internal/pkg/notify"
	"homelet/internal/repository"
)

// Service drives the booking lifecycle. Create and cancel are the only two
// legal paths; there is no in-place modification of dates. Every multi-row
// mutation runs inside one store transaction, with the house row locked so
// the availability check and the insert cannot interleave with a
// concurrent writer.
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

func (s *Service) CreateBooking(ctx context.Context, tenantEmail string, req CreateBookingRequest) (*domain.Booking, error) {
	start := availability.Day(req.StartDate)
	end := availability.Day(req.EndDate)
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	var created *domain.Booking
	err := s.store.Atomic(ctx, func(tx *repository.Store) error {
		h, err := tx.LockHouse(ctx, req.HouseID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrHouseNotFound
			}
			return err
		}

		existing, err := tx.BookingsForHouse(ctx, h.ID)
		if err != nil {
			return err
		}
		if !availability.RangeFree(existing, start, end) {
			return ErrDateConflict
		}

		days := availability.InclusiveDays(start, end)
		b := &domain.Booking{
			HouseID:     h.ID,
			TenantEmail: tenantEmail,
			StartDate:   start,
			EndDate:     end,
			TotalPrice:  h.PricePerDay * float64(days),
		}
		if err := tx.CreateBooking(ctx, b); err != nil {
			// Postgres deployments back the invariant with a no-overlap
			// exclusion constraint; a violation here means another
			// transaction won the same range.
			if isOverlapViolation(err) {
				return ErrDateConflict
			}
			return err
		}

		p := &domain.Payment{
			BookingID: b.ID,
			Amount:    b.TotalPrice,
			Status:    domain.PaymentPending,
			Reference: uuid.NewString(),
		}
		if err := tx.CreatePayment(ctx, p); err != nil {
			return err
		}
		b.Payment = p

		if err := s.projector.Recompute(ctx, tx, h.ID); err != nil {
			return err
		}

		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// CancelBooking removes the booking together with its payment. Both rows go
// in one transaction: a payment must never survive its booking. The house's
// availability is re-derived from a fresh read before the commit.
func (s *Service) CancelBooking(ctx context.Context, bookingID int64, requesterEmail string) error {
	var cancelled *domain.Booking
	err := s.store.Atomic(ctx, func(tx *repository.Store) error {
		b, err := tx.GetBooking(ctx, bookingID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		if b.TenantEmail != requesterEmail && (b.House == nil || b.House.OwnerEmail != requesterEmail) {
			return ErrForbidden
		}

		if err := tx.DeletePaymentByBookingID(ctx, bookingID); err != nil {
			return err
		}
		if err := tx.DeleteBooking(ctx, bookingID); err != nil {
			return err
		}

		if err := s.projector.Recompute(ctx, tx, b.HouseID); err != nil {
			return err
		}

		cancelled = b
		return nil
	})
	if err != nil {
		return err
	}

	if s.notifs != nil && cancelled != nil {
		_ = s.notifs.Send(ctx, notify.Notification{
			Recipient: cancelled.TenantEmail,
			Template:  notify.TemplateBookingCancelled,
			Data: map[string]string{
				"booking_id": strconv.FormatInt(cancelled.ID, 10),
				"start_date": cancelled.StartDate.Format("2006-01-02"),
				"end_date":   cancelled.EndDate.Format("2006-01-02"),
			},
		})
	}
	return nil
}

func (s *Service) ListTenantBookings(ctx context.Context, tenantEmail string, q ListQuery) ([]domain.Booking, int64, error) {
	limit, offset := pageBounds(q)
	return s.store.ListBookingsByTenant(ctx, tenantEmail, limit, offset)
}

func (s *Service) ListOwnerBookings(ctx context.Context, ownerEmail string, q ListQuery) ([]domain.Booking, int64, error) {
	limit, offset := pageBounds(q)
	return s.store.ListBookingsByOwner(ctx, ownerEmail, limit, offset)
}

func (s *Service) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.store.GetBooking(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func pageBounds(q ListQuery) (limit, offset int) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 50 {
		q.PageSize = 4
	}
	return q.PageSize, (q.Page - 1) * q.PageSize
}

func isOverlapViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23P01 exclusion_violation, 23505 unique_violation
		return pgErr.Code == "23P01" || pgErr.Code == "23505"
	}
	return false
}
