package repository

import (
	"context"
	"time"

	"github.com/timecraft-lab/backend/internal/entity"
	"github.com/timecraft-lab/backend/pkg/xcontext"
)

type StatisticReportFilter struct {
	ActivityIDs []string
	Begin       time.Time
	End         time.Time
}

// ActivityStatistic is a per-activity aggregation of report records.
type ActivityStatistic struct {
	ActivityID      string
	TotalTimeOnTask float64
	TotalTimeWasted float64
}

type ReportRepository interface {
	Create(ctx context.Context, data *entity.Report) error
	GetList(ctx context.Context, filter StatisticReportFilter) ([]entity.Report, error)
	Statistic(ctx context.Context, filter StatisticReportFilter) ([]ActivityStatistic, error)
}

type reportRepository struct{}

func NewReportRepository() ReportRepository {
	return &reportRepository{}
}

func (r *reportRepository) Create(ctx context.Context, data *entity.Report) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *reportRepository) GetList(ctx context.Context, filter StatisticReportFilter) ([]entity.Report, error) {
	tx := xcontext.DB(ctx)
	if len(filter.ActivityIDs) > 0 {
		tx = tx.Where("activity_id IN (?)", filter.ActivityIDs)
	}

	if !filter.Begin.IsZero() {
		tx = tx.Where("date >= ?", filter.Begin)
	}

	if !filter.End.IsZero() {
		tx = tx.Where("date < ?", filter.End)
	}

	var result []entity.Report
	if err := tx.Order("date ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *reportRepository) Statistic(ctx context.Context, filter StatisticReportFilter) ([]ActivityStatistic, error) {
	tx := xcontext.DB(ctx).
		Model(&entity.Report{}).
		Select(`
			activity_id,
			SUM(time_on_task) as total_time_on_task,
			SUM(time_wasted) as total_time_wasted`).
		Group("activity_id")

	if len(filter.ActivityIDs) > 0 {
		tx = tx.Where("activity_id IN (?)", filter.ActivityIDs)
	}

	if !filter.Begin.IsZero() {
		tx = tx.Where("date >= ?", filter.Begin)
	}

	if !filter.End.IsZero() {
		tx = tx.Where("date < ?", filter.End)
	}

	var result []ActivityStatistic
	if err := tx.Scan(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
