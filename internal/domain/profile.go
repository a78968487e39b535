package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/timecraft-lab/backend/internal/model"
	"github.com/timecraft-lab/backend/internal/repository"
	"github.com/timecraft-lab/backend/pkg/errorx"
	"github.com/timecraft-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ProfileDomain interface {
	Get(ctx context.Context, req *model.GetProfileRequest) (*model.GetProfileResponse, error)
	Update(ctx context.Context, req *model.UpdateProfileRequest) (*model.UpdateProfileResponse, error)
	Delete(ctx context.Context, req *model.DeleteProfileRequest) (*model.DeleteProfileResponse, error)
}

type profileDomain struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

func NewProfileDomain(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
) ProfileDomain {
	return &profileDomain{userRepo: userRepo, profileRepo: profileRepo}
}

func (d *profileDomain) Get(
	ctx context.Context, req *model.GetProfileRequest,
) (*model.GetProfileResponse, error) {
	profile, err := d.profileRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found profile")
		}

		xcontext.Logger(ctx).Errorf("Cannot get profile: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetProfileResponse{Profile: model.ConvertProfile(profile)}, nil
}

func (d *profileDomain) Update(
	ctx context.Context, req *model.UpdateProfileRequest,
) (*model.UpdateProfileResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	profile, err := d.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found profile")
		}

		xcontext.Logger(ctx).Errorf("Cannot get profile: %v", err)
		return nil, errorx.Unknown
	}

	updates := map[string]any{}
	if req.FullName != "" {
		updates["full_name"] = req.FullName
	}

	if username := strings.TrimSpace(req.Username); username != "" && username != profile.Username {
		if _, err := d.profileRepo.GetByUsername(ctx, username); err == nil {
			return nil, errorx.New(errorx.AlreadyExists, "Username is already taken")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot check existing username: %v", err)
			return nil, errorx.Unknown
		}

		updates["username"] = username
	}

	if req.Bio != "" {
		updates["bio"] = req.Bio
	}

	if req.Location != "" {
		updates["location"] = req.Location
	}

	if req.ProfilePictureURL != "" {
		updates["profile_picture_url"] = req.ProfilePictureURL
	}

	if req.WeeklyWorkHoursGoal != 0 {
		if req.WeeklyWorkHoursGoal < 0 {
			return nil, errorx.New(errorx.BadRequest, "Weekly work hours goal must not be negative")
		}

		updates["weekly_work_hours_goal"] = req.WeeklyWorkHoursGoal
	}

	if req.NumberOfWorkDays != 0 {
		if req.NumberOfWorkDays < 1 || req.NumberOfWorkDays > 7 {
			return nil, errorx.New(errorx.BadRequest, "Number of work days must be between 1 and 7")
		}

		updates["number_of_work_days"] = req.NumberOfWorkDays
	}

	// An empty body is an idempotent no-op rather than an error.
	if len(updates) > 0 {
		if err := d.profileRepo.UpdateByUserID(ctx, userID, updates); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update profile: %v", err)
			return nil, errorx.Unknown
		}

		profile, err = d.profileRepo.GetByUserID(ctx, userID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot reload profile: %v", err)
			return nil, errorx.Unknown
		}
	}

	return &model.UpdateProfileResponse{Profile: model.ConvertProfile(profile)}, nil
}

func (d *profileDomain) Delete(
	ctx context.Context, req *model.DeleteProfileRequest,
) (*model.DeleteProfileResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	profile, err := d.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found profile")
		}

		xcontext.Logger(ctx).Errorf("Cannot get profile: %v", err)
		return nil, errorx.Unknown
	}

	// The account and its profile are tombstoned together so the login
	// no longer resolves afterwards.
	if err := d.profileRepo.DeleteByUserID(ctx, userID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete profile: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.userRepo.DeleteByID(ctx, userID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteProfileResponse{Profile: model.ConvertProfile(profile)}, nil
}
