package repository

import (
	"context"

	"github.com/timecraft-lab/backend/internal/entity"
	"github.com/timecraft-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(ctx context.Context, data *entity.Activity) error
	GetByID(ctx context.Context, id string) (*entity.Activity, error)
	GetByName(ctx context.Context, userID, name string) (*entity.Activity, error)
	GetList(ctx context.Context, userID string) ([]entity.Activity, error)
	UpdateByID(ctx context.Context, id string, data map[string]any) error
	IncreaseTotalTimeOnTask(ctx context.Context, id string, delta float64) error
	DeleteByID(ctx context.Context, id string) error
}

type activityRepository struct{}

func NewActivityRepository() ActivityRepository {
	return &activityRepository{}
}

func (r *activityRepository) Create(ctx context.Context, data *entity.Activity) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *activityRepository) GetByID(ctx context.Context, id string) (*entity.Activity, error) {
	var record entity.Activity
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *activityRepository) GetByName(ctx context.Context, userID, name string) (*entity.Activity, error) {
	var record entity.Activity
	err := xcontext.DB(ctx).
		Where("user_id=? AND name=?", userID, name).
		Take(&record).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *activityRepository) GetList(ctx context.Context, userID string) ([]entity.Activity, error) {
	var result []entity.Activity
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *activityRepository) UpdateByID(ctx context.Context, id string, data map[string]any) error {
	return xcontext.DB(ctx).
		Model(&entity.Activity{}).
		Where("id=?", id).
		Updates(data).Error
}

func (r *activityRepository) IncreaseTotalTimeOnTask(ctx context.Context, id string, delta float64) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Activity{}).
		Where("id=?", id).
		Update("total_time_on_task", gorm.Expr("total_time_on_task + ?", delta))
	if err := tx.Error; err != nil {
		return err
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *activityRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Activity{}, "id=?", id).Error
}
