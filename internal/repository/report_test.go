package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/timecraft-lab/backend/internal/entity"
	"github.com/timecraft-lab/backend/internal/repository"
	"github.com/timecraft-lab/backend/pkg/testutil"
)

func Test_reportRepository_Statistic(t *testing.T) {
	ctx := testutil.MockContext()
	reportRepo := repository.NewReportRepository()

	a, err := testutil.SampleActivity(ctx, nil)
	require.NoError(t, err)
	b, err := testutil.SampleActivity(ctx, nil)
	require.NoError(t, err)

	day := func(d int) time.Time {
		return time.Date(2023, 3, d, 0, 0, 0, 0, time.UTC)
	}

	insert := []entity.Report{
		{ActivityID: a.ID, Date: day(1), TimeOnTask: 1, TimeWasted: 0.5},
		{ActivityID: a.ID, Date: day(2), TimeOnTask: 2},
		{ActivityID: b.ID, Date: day(2), TimeOnTask: 4},
		{ActivityID: a.ID, Date: day(3), TimeOnTask: 8},
	}
	for i := range insert {
		_, err := testutil.SampleReport(ctx, &insert[i])
		require.NoError(t, err)
	}

	t.Run("start inclusive, end exclusive", func(t *testing.T) {
		result, err := reportRepo.Statistic(ctx, repository.StatisticReportFilter{
			ActivityIDs: []string{a.ID, b.ID},
			Begin:       day(1),
			End:         day(3),
		})
		require.NoError(t, err)
		require.Len(t, result, 2)

		sums := map[string]repository.ActivityStatistic{}
		for _, s := range result {
			sums[s.ActivityID] = s
		}

		require.Equal(t, float64(3), sums[a.ID].TotalTimeOnTask)
		require.Equal(t, 0.5, sums[a.ID].TotalTimeWasted)
		require.Equal(t, float64(4), sums[b.ID].TotalTimeOnTask)
	})

	t.Run("activity filter isolates", func(t *testing.T) {
		result, err := reportRepo.Statistic(ctx, repository.StatisticReportFilter{
			ActivityIDs: []string{b.ID},
			Begin:       day(1),
			End:         day(4),
		})
		require.NoError(t, err)
		require.Len(t, result, 1)
		require.Equal(t, b.ID, result[0].ActivityID)
	})

	t.Run("empty window yields no rows", func(t *testing.T) {
		result, err := reportRepo.Statistic(ctx, repository.StatisticReportFilter{
			ActivityIDs: []string{a.ID, b.ID},
			Begin:       day(20),
			End:         day(27),
		})
		require.NoError(t, err)
		require.Empty(t, result)
	})

	t.Run("list respects the same window", func(t *testing.T) {
		result, err := reportRepo.GetList(ctx, repository.StatisticReportFilter{
			ActivityIDs: []string{a.ID},
			Begin:       day(2),
			End:         day(4),
		})
		require.NoError(t, err)
		require.Len(t, result, 2)
		require.Equal(t, day(2), result[0].Date.UTC())
		require.Equal(t, day(3), result[1].Date.UTC())
	})
}
