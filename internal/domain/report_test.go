package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/timecraft-lab/backend/internal/entity"
	"github.com/timecraft-lab/backend/internal/model"
	"github.com/timecraft-lab/backend/internal/repository"
	"github.com/timecraft-lab/backend/pkg/dateutil"
	"github.com/timecraft-lab/backend/pkg/testutil"
)

func newReportDomain() ReportDomain {
	return NewReportDomain(
		repository.NewReportRepository(),
		repository.NewActivityRepository(),
		repository.NewProfileRepository(),
	)
}

func Test_reportDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newReportDomain()
	activityRepo := repository.NewActivityRepository()
	profileRepo := repository.NewProfileRepository()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	other, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	activity, err := testutil.SampleActivity(ctx, &entity.Activity{UserID: user.ID})
	require.NoError(t, err)
	foreign, err := testutil.SampleActivity(ctx, &entity.Activity{UserID: other.ID})
	require.NoError(t, err)

	ctx = testutil.WithUserID(ctx, user.ID)

	t.Run("happy case propagates totals", func(t *testing.T) {
		resp, err := domain.Create(ctx, &model.CreateReportRequest{
			ActivityID: activity.ID,
			Date:       "2023-03-08",
			TimeOnTask: 2.5,
			TimeWasted: 0.5,
			Comment:    "morning session",
		})
		require.NoError(t, err)
		require.Equal(t, activity.ID, resp.Report.ActivityID)
		require.Equal(t, time.Date(2023, 3, 8, 0, 0, 0, 0, time.UTC), resp.Report.Date)

		reloaded, err := activityRepo.GetByID(ctx, activity.ID)
		require.NoError(t, err)
		require.Equal(t, activity.TotalTimeOnTask+2.5, reloaded.TotalTimeOnTask)

		profile, err := profileRepo.GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, 2.5, profile.TotalProductiveTime)
		require.Equal(t, 0.5, profile.TotalWastedTime)
	})

	t.Run("second report accumulates", func(t *testing.T) {
		_, err := domain.Create(ctx, &model.CreateReportRequest{
			ActivityID: activity.ID,
			Date:       "2023-03-08",
			TimeOnTask: 1,
		})
		require.NoError(t, err)

		profile, err := profileRepo.GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, 3.5, profile.TotalProductiveTime)
	})

	tests := []struct {
		name    string
		req     *model.CreateReportRequest
		wantErr string
	}{
		{
			name:    "missing activity id",
			req:     &model.CreateReportRequest{TimeOnTask: 1},
			wantErr: "Activity id is required",
		},
		{
			name: "unknown activity",
			req: &model.CreateReportRequest{
				ActivityID: "unknown-id",
				TimeOnTask: 1,
			},
			wantErr: "Not found activity",
		},
		{
			name: "foreign activity",
			req: &model.CreateReportRequest{
				ActivityID: foreign.ID,
				TimeOnTask: 1,
			},
			wantErr: "Not found activity",
		},
		{
			name: "negative time",
			req: &model.CreateReportRequest{
				ActivityID: activity.ID,
				TimeOnTask: -1,
			},
			wantErr: "Logged time must not be negative",
		},
		{
			name: "more than a day",
			req: &model.CreateReportRequest{
				ActivityID: activity.ID,
				TimeOnTask: 25,
			},
			wantErr: "Logged time must not exceed 24 hours",
		},
		{
			name: "future date",
			req: &model.CreateReportRequest{
				ActivityID: activity.ID,
				Date:       "9999-01-01",
				TimeOnTask: 1,
			},
			wantErr: "Cannot log time for a future date",
		},
		{
			name: "invalid date",
			req: &model.CreateReportRequest{
				ActivityID: activity.ID,
				Date:       "01/01/2023",
				TimeOnTask: 1,
			},
			wantErr: "Invalid date format, expected YYYY-MM-DD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.Create(ctx, tt.req)
			require.Error(t, err)
			require.Equal(t, tt.wantErr, err.Error())
		})
	}

	t.Run("deleted activity", func(t *testing.T) {
		deleted, err := testutil.SampleActivity(ctx, &entity.Activity{UserID: user.ID})
		require.NoError(t, err)
		require.NoError(t, activityRepo.DeleteByID(ctx, deleted.ID))

		_, err = domain.Create(ctx, &model.CreateReportRequest{
			ActivityID: deleted.ID,
			TimeOnTask: 1,
		})
		require.Error(t, err)
		require.Equal(t, "Not found activity", err.Error())
	})
}

func Test_reportDomain_GetWeek(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newReportDomain()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	coding, err := testutil.SampleActivity(ctx, &entity.Activity{
		UserID: user.ID,
		Name:   "Coding",
	})
	require.NoError(t, err)
	reading, err := testutil.SampleActivity(ctx, &entity.Activity{
		UserID: user.ID,
		Name:   "Coding", // same display name must not merge entries
	})
	require.NoError(t, err)

	// 2023-03-06 is a Monday.
	insert := []entity.Report{
		{ActivityID: coding.ID, Date: time.Date(2023, 3, 6, 0, 0, 0, 0, time.UTC), TimeOnTask: 2, TimeWasted: 1},
		{ActivityID: coding.ID, Date: time.Date(2023, 3, 12, 0, 0, 0, 0, time.UTC), TimeOnTask: 3},
		{ActivityID: reading.ID, Date: time.Date(2023, 3, 8, 0, 0, 0, 0, time.UTC), TimeOnTask: 1.5},
		// Outside the queried week.
		{ActivityID: coding.ID, Date: time.Date(2023, 3, 13, 0, 0, 0, 0, time.UTC), TimeOnTask: 100},
	}
	for i := range insert {
		_, err := testutil.SampleReport(ctx, &insert[i])
		require.NoError(t, err)
	}

	ctx = testutil.WithUserID(ctx, user.ID)

	resp, err := domain.GetWeek(ctx, &model.GetReportWeekRequest{Date: "2023-03-08"})
	require.NoError(t, err)
	require.Equal(t, time.Date(2023, 3, 6, 0, 0, 0, 0, time.UTC), resp.StartDate)
	require.Equal(t, time.Date(2023, 3, 12, 0, 0, 0, 0, time.UTC), resp.EndDate)
	require.Equal(t, 6.5, resp.TotalProductiveTime)
	require.Equal(t, float64(1), resp.TotalWastedTime)
	require.Len(t, resp.Activities, 2)
	require.Equal(t, float64(5), resp.Activities[coding.ID].TotalTimeOnTask)
	require.Equal(t, 1.5, resp.Activities[reading.ID].TotalTimeOnTask)
	require.Equal(t, "Coding", resp.Activities[reading.ID].Name)
}

func Test_reportDomain_GetDay(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newReportDomain()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	activity, err := testutil.SampleActivity(ctx, &entity.Activity{UserID: user.ID})
	require.NoError(t, err)

	today := dateutil.StartOfDay(time.Now())
	_, err = testutil.SampleReport(ctx, &entity.Report{
		ActivityID: activity.ID,
		Date:       today,
		TimeOnTask: 2,
	})
	require.NoError(t, err)

	ctx = testutil.WithUserID(ctx, user.ID)

	t.Run("defaults to today", func(t *testing.T) {
		resp, err := domain.GetDay(ctx, &model.GetReportDayRequest{})
		require.NoError(t, err)
		require.Equal(t, today, resp.StartDate)
		require.Equal(t, today.Weekday().String(), resp.Weekday)
		require.Equal(t, float64(2), resp.TotalProductiveTime)
	})

	t.Run("day without logs is empty, not an error", func(t *testing.T) {
		resp, err := domain.GetDay(ctx, &model.GetReportDayRequest{Date: "2000-01-01"})
		require.NoError(t, err)
		require.Empty(t, resp.Activities)
		require.Zero(t, resp.TotalProductiveTime)
		require.Equal(t, "Saturday", resp.Weekday)
	})
}

func Test_reportDomain_GetMonth(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newReportDomain()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	activity, err := testutil.SampleActivity(ctx, &entity.Activity{UserID: user.ID})
	require.NoError(t, err)

	_, err = testutil.SampleReport(ctx, &entity.Report{
		ActivityID: activity.ID,
		Date:       time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
		TimeOnTask: 4,
	})
	require.NoError(t, err)
	_, err = testutil.SampleReport(ctx, &entity.Report{
		ActivityID: activity.ID,
		Date:       time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
		TimeOnTask: 8,
	})
	require.NoError(t, err)

	ctx = testutil.WithUserID(ctx, user.ID)

	resp, err := domain.GetMonth(ctx, &model.GetReportMonthRequest{
		Month: "february",
		Year:  2023,
	})
	require.NoError(t, err)
	require.Equal(t, "February", resp.Month)
	require.Equal(t, 2023, resp.Year)
	require.Equal(t, float64(4), resp.TotalProductiveTime)

	_, err = domain.GetMonth(ctx, &model.GetReportMonthRequest{Month: "smarch"})
	require.Error(t, err)
}

func Test_reportDomain_GetRange(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newReportDomain()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	activity, err := testutil.SampleActivity(ctx, &entity.Activity{UserID: user.ID})
	require.NoError(t, err)

	for day, hours := range map[int]float64{1: 1, 5: 2, 10: 4} {
		_, err := testutil.SampleReport(ctx, &entity.Report{
			ActivityID: activity.ID,
			Date:       time.Date(2023, 3, day, 0, 0, 0, 0, time.UTC),
			TimeOnTask: hours,
		})
		require.NoError(t, err)
	}

	ctx = testutil.WithUserID(ctx, user.ID)

	t.Run("end date is inclusive", func(t *testing.T) {
		resp, err := domain.GetRange(ctx, &model.GetReportRangeRequest{
			StartDate: "2023-03-01",
			EndDate:   "2023-03-05",
		})
		require.NoError(t, err)
		require.Equal(t, float64(3), resp.TotalProductiveTime)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := domain.GetRange(ctx, &model.GetReportRangeRequest{
			StartDate: "2023-03-05",
			EndDate:   "2023-03-01",
		})
		require.Error(t, err)
		require.Equal(t, "end_date must not be before start_date", err.Error())
	})

	t.Run("only one bound", func(t *testing.T) {
		_, err := domain.GetRange(ctx, &model.GetReportRangeRequest{StartDate: "2023-03-01"})
		require.Error(t, err)
		require.Equal(t, "Both start_date and end_date are required", err.Error())
	})

	t.Run("user without activities gets an empty summary", func(t *testing.T) {
		lonely, err := testutil.SampleUser(ctx, nil)
		require.NoError(t, err)

		resp, err := domain.GetRange(testutil.WithUserID(ctx, lonely.ID),
			&model.GetReportRangeRequest{})
		require.NoError(t, err)
		require.Empty(t, resp.Activities)
	})
}

func Test_reportDomain_GetTotals(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newReportDomain()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	activity, err := testutil.SampleActivity(ctx, &entity.Activity{UserID: user.ID})
	require.NoError(t, err)

	ctx = testutil.WithUserID(ctx, user.ID)

	_, err = domain.Create(ctx, &model.CreateReportRequest{
		ActivityID: activity.ID,
		TimeOnTask: 3,
		TimeWasted: 1,
	})
	require.NoError(t, err)

	resp, err := domain.GetTotals(ctx, &model.GetReportTotalsRequest{})
	require.NoError(t, err)
	require.Equal(t, float64(3), resp.TotalProductiveTime)
	require.Equal(t, float64(1), resp.TotalWastedTime)
}
