package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"homelet/internal/domain"
)

type HouseRepository struct {
	db *gorm.DB
}

func NewHouseRepository(db *gorm.DB) *HouseRepository {
	return &HouseRepository{db: db}
}

// HouseFilter narrows public browse results. Zero values mean "no filter".
type HouseFilter struct {
	RoomType     string
	MinPrice     float64
	MaxPrice     float64
	Availability domain.HouseAvailability
}

func (r *HouseRepository) Create(ctx context.Context, h *domain.House) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *HouseRepository) GetByID(ctx context.Context, id int64) (*domain.House, error) {
	var h domain.House
	err := r.db.WithContext(ctx).
		Preload("Images").
		Preload("Reviews").
		First(&h, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

// Browse lists publicly visible houses: restricted listings are excluded
// no matter what their availability says.
func (r *HouseRepository) Browse(ctx context.Context, f HouseFilter, limit, offset int) ([]domain.House, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.House{}).
		Where("moderation_status = ?", domain.HouseValid)

	if f.RoomType != "" {
		q = q.Where("room_type = ?", f.RoomType)
	}
	if f.MinPrice > 0 {
		q = q.Where("price_per_day >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("price_per_day <= ?", f.MaxPrice)
	}
	if f.Availability != "" {
		q = q.Where("availability = ?", f.Availability)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.House
	err := q.Preload("Images").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, total, err
}

func (r *HouseRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]domain.House, error) {
	var out []domain.House
	err := r.db.WithContext(ctx).
		Preload("Images").
		Where("owner_email = ?", ownerEmail).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *HouseRepository) ListAll(ctx context.Context, limit, offset int) ([]domain.House, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.House{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.House
	err := r.db.WithContext(ctx).
		Order("id").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, total, err
}

func (r *HouseRepository) Update(ctx context.Context, h *domain.House) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *HouseRepository) UpdateModerationStatus(ctx context.Context, id int64, status domain.ModerationStatus) error {
	res := r.db.WithContext(ctx).
		Model(&domain.House{}).
		Where("id = ?", id).
		Update("moderation_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the house and everything hanging off it. Bookings lose
// their payments through the booking cascade.
func (r *HouseRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bookingIDs []int64
		if err := tx.Model(&domain.Booking{}).
			Where("house_id = ?", id).
			Pluck("id", &bookingIDs).Error; err != nil {
			return err
		}
		if len(bookingIDs) > 0 {
			if err := tx.Where("booking_id IN ?", bookingIDs).Delete(&domain.Payment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", bookingIDs).Delete(&domain.Booking{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("house_id = ?", id).Delete(&domain.HouseImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("house_id = ?", id).Delete(&domain.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("house_id = ?", id).Delete(&domain.Favorite{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&domain.House{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *HouseRepository) AddImage(ctx context.Context, img *domain.HouseImage) error {
	return r.db.WithContext(ctx).Create(img).Error
}
