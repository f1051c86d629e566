package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"homelet/internal/domain"
)

type VerificationCodeRepository struct {
	db *gorm.DB
}

func NewVerificationCodeRepository(db *gorm.DB) *VerificationCodeRepository {
	return &VerificationCodeRepository{db: db}
}

// Upsert replaces any previous code for the same (email, purpose) key.
func (r *VerificationCodeRepository) Upsert(ctx context.Context, vc *domain.VerificationCode) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "email"}, {Name: "purpose"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"code_hash", "attempts", "last_sent_at", "expires_at", "used_at",
			}),
		}).
		Create(vc).Error
}

func (r *VerificationCodeRepository) Get(ctx context.Context, email string, purpose domain.CodePurpose) (*domain.VerificationCode, error) {
	var vc domain.VerificationCode
	err := r.db.WithContext(ctx).
		Where("email = ? AND purpose = ?", email, purpose).
		First(&vc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &vc, nil
}

func (r *VerificationCodeRepository) Update(ctx context.Context, vc *domain.VerificationCode) error {
	return r.db.WithContext(ctx).Save(vc).Error
}

func (r *VerificationCodeRepository) Delete(ctx context.Context, email string, purpose domain.CodePurpose) error {
	return r.db.WithContext(ctx).
		Where("email = ? AND purpose = ?", email, purpose).
		Delete(&domain.VerificationCode{}).Error
}

// DeleteExpired removes stale rows, used by the periodic cleanup command.
func (r *VerificationCodeRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at < CURRENT_TIMESTAMP").
		Delete(&domain.VerificationCode{})
	return res.RowsAffected, res.Error
}
