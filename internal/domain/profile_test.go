package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/timecraft-lab/backend/internal/entity"
	"github.com/timecraft-lab/backend/internal/model"
	"github.com/timecraft-lab/backend/internal/repository"
	"github.com/timecraft-lab/backend/pkg/testutil"
)

func Test_profileDomain_Get(t *testing.T) {
	ctx := testutil.MockContext()
	domain := NewProfileDomain(
		repository.NewUserRepository(),
		repository.NewProfileRepository(),
	)

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	resp, err := domain.Get(testutil.WithUserID(ctx, user.ID), &model.GetProfileRequest{})
	require.NoError(t, err)
	require.Equal(t, user.ID, resp.Profile.UserID)

	_, err = domain.Get(testutil.WithUserID(ctx, "unknown-user"), &model.GetProfileRequest{})
	require.Error(t, err)
	require.Equal(t, "Not found profile", err.Error())
}

func Test_profileDomain_Update(t *testing.T) {
	ctx := testutil.MockContext()
	domain := NewProfileDomain(
		repository.NewUserRepository(),
		repository.NewProfileRepository(),
	)

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	other, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	otherProfile, err := repository.NewProfileRepository().GetByUserID(ctx, other.ID)
	require.NoError(t, err)

	ctx = testutil.WithUserID(ctx, user.ID)

	t.Run("partial update", func(t *testing.T) {
		resp, err := domain.Update(ctx, &model.UpdateProfileRequest{
			FullName: "Alice Smith",
			Location: "Berlin",
		})
		require.NoError(t, err)
		require.Equal(t, "Alice Smith", resp.Profile.FullName)
		require.Equal(t, "Berlin", resp.Profile.Location)
		require.Equal(t, 5, resp.Profile.NumberOfWorkDays)
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		resp, err := domain.Update(ctx, &model.UpdateProfileRequest{})
		require.NoError(t, err)
		require.Equal(t, "Alice Smith", resp.Profile.FullName)
	})

	t.Run("taken username", func(t *testing.T) {
		_, err := domain.Update(ctx, &model.UpdateProfileRequest{
			Username: otherProfile.Username,
		})
		require.Error(t, err)
		require.Equal(t, "Username is already taken", err.Error())
	})

	t.Run("invalid work days", func(t *testing.T) {
		_, err := domain.Update(ctx, &model.UpdateProfileRequest{NumberOfWorkDays: 8})
		require.Error(t, err)
		require.Equal(t, "Number of work days must be between 1 and 7", err.Error())
	})

	t.Run("negative weekly goal", func(t *testing.T) {
		_, err := domain.Update(ctx, &model.UpdateProfileRequest{WeeklyWorkHoursGoal: -1})
		require.Error(t, err)
		require.Equal(t, "Weekly work hours goal must not be negative", err.Error())
	})
}

func Test_profileDomain_Delete(t *testing.T) {
	ctx := testutil.MockContext()
	userRepo := repository.NewUserRepository()
	domain := NewProfileDomain(userRepo, repository.NewProfileRepository())

	user, err := testutil.SampleUser(ctx, &entity.User{Email: "gone@example.com"})
	require.NoError(t, err)
	userCtx := testutil.WithUserID(ctx, user.ID)

	resp, err := domain.Delete(userCtx, &model.DeleteProfileRequest{})
	require.NoError(t, err)
	require.Equal(t, user.ID, resp.Profile.UserID)

	t.Run("profile no longer resolves", func(t *testing.T) {
		_, err := domain.Get(userCtx, &model.GetProfileRequest{})
		require.Error(t, err)
		require.Equal(t, "Not found profile", err.Error())
	})

	t.Run("account no longer resolves", func(t *testing.T) {
		_, err := userRepo.GetByEmail(ctx, "gone@example.com")
		require.Error(t, err)
	})
}
