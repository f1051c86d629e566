package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"homelet/internal/domain"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(ctx context.Context, rep *domain.Report) error {
	if rep.Status == "" {
		rep.Status = domain.ReportPending
	}
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *ReportRepository) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	var rep domain.Report
	if err := r.db.WithContext(ctx).First(&rep, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rep, nil
}

func (r *ReportRepository) List(ctx context.Context, status domain.ReportStatus, limit, offset int) ([]domain.Report, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Report{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.Report
	err := q.Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, total, err
}

func (r *ReportRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReportStatus) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Report{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
