package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"homelet/internal/domain"
)

// Store groups the house/booking/payment accessors that have to commit
// together. Atomic rebinds the whole store to a single transaction so a
// service can lock, check and write without a gap for concurrent writers.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Atomic(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// -------------------- houses --------------------

func (s *Store) GetHouse(ctx context.Context, id int64) (*domain.House, error) {
	var h domain.House
	if err := s.db.WithContext(ctx).First(&h, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

// LockHouse reads the house under a row lock. SQLite has no SELECT FOR
// UPDATE; there the transaction's write lock serializes writers instead.
func (s *Store) LockHouse(ctx context.Context, id int64) (*domain.House, error) {
	q := s.db.WithContext(ctx)
	if s.db.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var h domain.House
	err := q.First(&h, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (s *Store) UpdateHouseAvailability(ctx context.Context, houseID int64, a domain.HouseAvailability) error {
	return s.db.WithContext(ctx).
		Model(&domain.House{}).
		Where("id = ?", houseID).
		Update("availability", a).Error
}

// -------------------- bookings --------------------

func (s *Store) BookingsForHouse(ctx context.Context, houseID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	err := s.db.WithContext(ctx).
		Where("house_id = ?", houseID).
		Order("start_date").
		Find(&out).Error
	return out, err
}

func (s *Store) CreateBooking(ctx context.Context, b *domain.Booking) error {
	return s.db.WithContext(ctx).Create(b).Error
}

func (s *Store) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	err := s.db.WithContext(ctx).
		Preload("Payment").
		Preload("House").
		First(&b, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (s *Store) DeleteBooking(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&domain.Booking{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListBookingsByTenant(ctx context.Context, email string, limit, offset int) ([]domain.Booking, int64, error) {
	q := s.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("tenant_email = ?", email)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.Booking
	err := q.Preload("House").Preload("Payment").
		Order("start_date DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, total, err
}

func (s *Store) ListBookingsByOwner(ctx context.Context, ownerEmail string, limit, offset int) ([]domain.Booking, int64, error) {
	base := s.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Joins("JOIN houses ON houses.id = bookings.house_id").
		Where("houses.owner_email = ?", ownerEmail)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.Booking
	err := base.Select("bookings.*").
		Preload("House").Preload("Payment").
		Order("bookings.start_date DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, total, err
}

// -------------------- payments --------------------

func (s *Store) CreatePayment(ctx context.Context, p *domain.Payment) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *Store) GetPaymentByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	var p domain.Payment
	err := s.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *Store) DeletePaymentByBookingID(ctx context.Context, bookingID int64) error {
	return s.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Delete(&domain.Payment{}).Error
}

func (s *Store) UpdatePayment(ctx context.Context, p *domain.Payment) error {
	return s.db.WithContext(ctx).Save(p).Error
}

// MarkPaymentCompleted flips a pending payment to completed. Returns
// ErrNotFound when no pending payment exists for the booking, so a
// double confirm never rewrites PaidAt.
func (s *Store) MarkPaymentCompleted(ctx context.Context, bookingID int64, paidAt time.Time) error {
	res := s.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("booking_id = ? AND status = ?", bookingID, domain.PaymentPending).
		Updates(map[string]any{
			"status":  domain.PaymentCompleted,
			"paid_at": paidAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
