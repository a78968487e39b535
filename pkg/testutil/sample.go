package testutil

import (
	"context"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/timecraft-lab/backend/internal/entity"
	"github.com/timecraft-lab/backend/internal/repository"
	"github.com/timecraft-lab/backend/pkg/crypto"
)

// SampleUser creates a user with a profile in the database. Randomized
// fields can be overwritten by non-zero fields of init.
func SampleUser(ctx context.Context, init *entity.User) (entity.User, error) {
	userRepo := repository.NewUserRepository()

	hashed, err := crypto.HashPassword("password123")
	if err != nil {
		return entity.User{}, err
	}

	sample := &entity.User{
		Base: entity.Base{
			ID:      uuid.NewString(),
			ShortID: crypto.GenerateShortID(),
		},
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: hashed,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := userRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}

	_, err = SampleProfile(ctx, &entity.Profile{UserID: sample.ID})
	if err != nil {
		return *sample, err
	}

	return *sample, nil
}

func SampleProfile(ctx context.Context, init *entity.Profile) (entity.Profile, error) {
	profileRepo := repository.NewProfileRepository()

	sample := &entity.Profile{
		Base: entity.Base{
			ID:      uuid.NewString(),
			ShortID: crypto.GenerateShortID(),
		},
		UserID:              uuid.NewString(),
		FullName:            "Sample User",
		Username:            uuid.NewString(),
		WeeklyWorkHoursGoal: 40,
		NumberOfWorkDays:    5,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := profileRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

func SampleActivity(ctx context.Context, init *entity.Activity) (entity.Activity, error) {
	activityRepo := repository.NewActivityRepository()

	sample := &entity.Activity{
		Base: entity.Base{
			ID:      uuid.NewString(),
			ShortID: crypto.GenerateShortID(),
		},
		UserID:     uuid.NewString(),
		Name:       uuid.NewString(),
		DailyGoal:  2,
		WeeklyGoal: 10,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := activityRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

func SampleReport(ctx context.Context, init *entity.Report) (entity.Report, error) {
	reportRepo := repository.NewReportRepository()

	sample := &entity.Report{
		Base: entity.Base{
			ID:      uuid.NewString(),
			ShortID: crypto.GenerateShortID(),
		},
		ActivityID: uuid.NewString(),
		Date:       time.Now().UTC().Truncate(24 * time.Hour),
		TimeOnTask: 1,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := reportRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if overwriteField.Interface() != reflect.Zero(overwriteField.Type()).Interface() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
