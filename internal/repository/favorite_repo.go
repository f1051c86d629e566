package repository

import (
	"context"

	"gorm.io/gorm"

	"homelet/internal/domain"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Add(ctx context.Context, userEmail string, houseID int64) (*domain.Favorite, error) {
	exists, err := r.Exists(ctx, userEmail, houseID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	f := &domain.Favorite{
		UserEmail: userEmail,
		HouseID:   houseID,
	}
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Preload("House").First(f, f.ID).Error; err != nil {
		return nil, err
	}
	return f, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userEmail string, houseID int64) error {
	res := r.db.WithContext(ctx).
		Where("user_email = ? AND house_id = ?", userEmail, houseID).
		Delete(&domain.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userEmail string, limit, offset int) ([]domain.Favorite, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("user_email = ?", userEmail)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.Favorite
	err := q.Preload("House").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, total, err
}

func (r *FavoriteRepository) Exists(ctx context.Context, userEmail string, houseID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("user_email = ? AND house_id = ?", userEmail, houseID).
		Count(&cnt).Error
	return cnt > 0, err
}
