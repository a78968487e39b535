package repository

import (
	"context"

	"github.com/timecraft-lab/backend/internal/entity"
	"github.com/timecraft-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(ctx context.Context, data *entity.Profile) error
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	GetByUsername(ctx context.Context, username string) (*entity.Profile, error)
	UpdateByUserID(ctx context.Context, userID string, data map[string]any) error
	IncreaseTotals(ctx context.Context, userID string, productive, wasted float64) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type profileRepository struct{}

func NewProfileRepository() ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) Create(ctx context.Context, data *entity.Profile) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	var record entity.Profile
	if err := xcontext.DB(ctx).Where("user_id=?", userID).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *profileRepository) GetByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	var record entity.Profile
	if err := xcontext.DB(ctx).Where("username=?", username).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *profileRepository) UpdateByUserID(ctx context.Context, userID string, data map[string]any) error {
	return xcontext.DB(ctx).
		Model(&entity.Profile{}).
		Where("user_id=?", userID).
		Updates(data).Error
}

func (r *profileRepository) IncreaseTotals(ctx context.Context, userID string, productive, wasted float64) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Profile{}).
		Where("user_id=?", userID).
		Updates(map[string]any{
			"total_productive_time": gorm.Expr("total_productive_time + ?", productive),
			"total_wasted_time":     gorm.Expr("total_wasted_time + ?", wasted),
		})
	if err := tx.Error; err != nil {
		return err
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *profileRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return xcontext.DB(ctx).Delete(&entity.Profile{}, "user_id=?", userID).Error
}
