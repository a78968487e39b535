package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/timecraft-lab/backend/internal/domain/period"
	"github.com/timecraft-lab/backend/internal/entity"
	"github.com/timecraft-lab/backend/internal/model"
	"github.com/timecraft-lab/backend/internal/repository"
	"github.com/timecraft-lab/backend/pkg/crypto"
	"github.com/timecraft-lab/backend/pkg/dateutil"
	"github.com/timecraft-lab/backend/pkg/errorx"
	"github.com/timecraft-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// maxHoursPerDay rejects obviously impossible log entries.
const maxHoursPerDay = 24

type ReportDomain interface {
	Create(ctx context.Context, req *model.CreateReportRequest) (*model.CreateReportResponse, error)
	GetRange(ctx context.Context, req *model.GetReportRangeRequest) (*model.GetReportRangeResponse, error)
	GetDay(ctx context.Context, req *model.GetReportDayRequest) (*model.GetReportDayResponse, error)
	GetWeek(ctx context.Context, req *model.GetReportWeekRequest) (*model.GetReportWeekResponse, error)
	GetMonth(ctx context.Context, req *model.GetReportMonthRequest) (*model.GetReportMonthResponse, error)
	GetTotals(ctx context.Context, req *model.GetReportTotalsRequest) (*model.GetReportTotalsResponse, error)
}

type reportDomain struct {
	reportRepo   repository.ReportRepository
	activityRepo repository.ActivityRepository
	profileRepo  repository.ProfileRepository
}

func NewReportDomain(
	reportRepo repository.ReportRepository,
	activityRepo repository.ActivityRepository,
	profileRepo repository.ProfileRepository,
) ReportDomain {
	return &reportDomain{
		reportRepo:   reportRepo,
		activityRepo: activityRepo,
		profileRepo:  profileRepo,
	}
}

func (d *reportDomain) Create(
	ctx context.Context, req *model.CreateReportRequest,
) (*model.CreateReportResponse, error) {
	if req.ActivityID == "" {
		return nil, errorx.New(errorx.BadRequest, "Activity id is required")
	}

	if req.TimeOnTask < 0 || req.TimeWasted < 0 {
		return nil, errorx.New(errorx.BadRequest, "Logged time must not be negative")
	}

	if req.TimeOnTask > maxHoursPerDay || req.TimeWasted > maxHoursPerDay {
		return nil, errorx.New(errorx.BadRequest,
			"Logged time must not exceed %d hours", maxHoursPerDay)
	}

	userID := xcontext.RequestUserID(ctx)
	activity, err := d.activityRepo.GetByID(ctx, req.ActivityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found activity")
		}

		xcontext.Logger(ctx).Errorf("Cannot get activity: %v", err)
		return nil, errorx.Unknown
	}

	if activity.UserID != userID {
		return nil, errorx.New(errorx.NotFound, "Not found activity")
	}

	date := dateutil.StartOfDay(time.Now())
	if req.Date != "" {
		parsed, err := dateutil.ParseDate(req.Date)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid date format, expected YYYY-MM-DD")
		}

		date = dateutil.StartOfDay(parsed)
	}

	if date.After(dateutil.StartOfDay(time.Now())) {
		return nil, errorx.New(errorx.BadRequest, "Cannot log time for a future date")
	}

	report := &entity.Report{
		Base: entity.Base{
			ID:      uuid.NewString(),
			ShortID: crypto.GenerateShortID(),
		},
		ActivityID: activity.ID,
		Date:       date,
		TimeOnTask: req.TimeOnTask,
		TimeWasted: req.TimeWasted,
		Comment:    strings.TrimSpace(req.Comment),
	}
	if err := d.reportRepo.Create(ctx, report); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create report: %v", err)
		return nil, errorx.Unknown
	}

	// Running totals are maintained with atomic increments inside the
	// request transaction, so a failed increment rolls the report back.
	if err := d.activityRepo.IncreaseTotalTimeOnTask(ctx, activity.ID, req.TimeOnTask); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot increase activity total: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.profileRepo.IncreaseTotals(ctx, userID, req.TimeOnTask, req.TimeWasted); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot increase profile totals: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateReportResponse{Report: model.ConvertReport(report)}, nil
}

// summarize aggregates the requesting user's reports over a period into
// a per-activity breakdown. A period with no reports yields a summary
// with an empty breakdown, not an error.
func (d *reportDomain) summarize(ctx context.Context, p period.Period) (*model.ReportSummary, error) {
	activities, err := d.activityRepo.GetList(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get activities: %v", err)
		return nil, errorx.Unknown
	}

	summary := &model.ReportSummary{
		StartDate:  p.Begin,
		EndDate:    p.End.AddDate(0, 0, -1),
		Activities: map[string]model.ActivitySummary{},
	}
	if len(activities) == 0 {
		return summary, nil
	}

	activityIDs := make([]string, 0, len(activities))
	names := make(map[string]string, len(activities))
	for _, a := range activities {
		activityIDs = append(activityIDs, a.ID)
		names[a.ID] = a.Name
	}

	statistics, err := d.reportRepo.Statistic(ctx, repository.StatisticReportFilter{
		ActivityIDs: activityIDs,
		Begin:       p.Begin,
		End:         p.End,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot aggregate reports: %v", err)
		return nil, errorx.Unknown
	}

	for _, s := range statistics {
		summary.Activities[s.ActivityID] = model.ActivitySummary{
			ActivityID:      s.ActivityID,
			Name:            names[s.ActivityID],
			TotalTimeOnTask: s.TotalTimeOnTask,
			TotalTimeWasted: s.TotalTimeWasted,
		}
		summary.TotalProductiveTime += s.TotalTimeOnTask
		summary.TotalWastedTime += s.TotalTimeWasted
	}

	return summary, nil
}

func (d *reportDomain) GetRange(
	ctx context.Context, req *model.GetReportRangeRequest,
) (*model.GetReportRangeResponse, error) {
	p, err := period.Range(req.StartDate, req.EndDate, time.Now())
	if err != nil {
		return nil, err
	}

	summary, err := d.summarize(ctx, p)
	if err != nil {
		return nil, err
	}

	return &model.GetReportRangeResponse{ReportSummary: *summary}, nil
}

func (d *reportDomain) GetDay(
	ctx context.Context, req *model.GetReportDayRequest,
) (*model.GetReportDayResponse, error) {
	p, err := period.Day(req.Date, time.Now())
	if err != nil {
		return nil, err
	}

	summary, err := d.summarize(ctx, p)
	if err != nil {
		return nil, err
	}

	return &model.GetReportDayResponse{
		ReportSummary: *summary,
		Weekday:       p.Begin.Weekday().String(),
	}, nil
}

func (d *reportDomain) GetWeek(
	ctx context.Context, req *model.GetReportWeekRequest,
) (*model.GetReportWeekResponse, error) {
	p, err := period.Week(req.Week, req.Date, time.Now())
	if err != nil {
		return nil, err
	}

	summary, err := d.summarize(ctx, p)
	if err != nil {
		return nil, err
	}

	return &model.GetReportWeekResponse{ReportSummary: *summary}, nil
}

func (d *reportDomain) GetMonth(
	ctx context.Context, req *model.GetReportMonthRequest,
) (*model.GetReportMonthResponse, error) {
	p, err := period.Month(req.Month, req.Year, time.Now())
	if err != nil {
		return nil, err
	}

	summary, err := d.summarize(ctx, p)
	if err != nil {
		return nil, err
	}

	return &model.GetReportMonthResponse{
		ReportSummary: *summary,
		Month:         p.Begin.Month().String(),
		Year:          p.Begin.Year(),
	}, nil
}

func (d *reportDomain) GetTotals(
	ctx context.Context, req *model.GetReportTotalsRequest,
) (*model.GetReportTotalsResponse, error) {
	profile, err := d.profileRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found profile")
		}

		xcontext.Logger(ctx).Errorf("Cannot get profile: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetReportTotalsResponse{
		TotalProductiveTime: profile.TotalProductiveTime,
		TotalWastedTime:     profile.TotalWastedTime,
	}, nil
}
