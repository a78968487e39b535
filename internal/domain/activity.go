package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/timecraft-lab/backend/internal/entity"
	"github.com/timecraft-lab/backend/internal/model"
	"github.com/timecraft-lab/backend/internal/repository"
	"github.com/timecraft-lab/backend/pkg/crypto"
	"github.com/timecraft-lab/backend/pkg/errorx"
	"github.com/timecraft-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ActivityDomain interface {
	Create(ctx context.Context, req *model.CreateActivityRequest) (*model.CreateActivityResponse, error)
	GetList(ctx context.Context, req *model.GetActivitiesRequest) (*model.GetActivitiesResponse, error)
	Get(ctx context.Context, req *model.GetActivityRequest) (*model.GetActivityResponse, error)
	Update(ctx context.Context, req *model.UpdateActivityRequest) (*model.UpdateActivityResponse, error)
	Delete(ctx context.Context, req *model.DeleteActivityRequest) (*model.DeleteActivityResponse, error)
}

type activityDomain struct {
	activityRepo repository.ActivityRepository
	profileRepo  repository.ProfileRepository
}

func NewActivityDomain(
	activityRepo repository.ActivityRepository,
	profileRepo repository.ProfileRepository,
) ActivityDomain {
	return &activityDomain{activityRepo: activityRepo, profileRepo: profileRepo}
}

// getOwned loads an activity and checks it belongs to the requesting
// user. A foreign activity is reported as not found, never as
// forbidden, so ids cannot be probed.
func (d *activityDomain) getOwned(ctx context.Context, id string) (*entity.Activity, error) {
	activity, err := d.activityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found activity")
		}

		xcontext.Logger(ctx).Errorf("Cannot get activity: %v", err)
		return nil, errorx.Unknown
	}

	if activity.UserID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.NotFound, "Not found activity")
	}

	return activity, nil
}

func (d *activityDomain) Create(
	ctx context.Context, req *model.CreateActivityRequest,
) (*model.CreateActivityResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errorx.New(errorx.BadRequest, "Activity name is required")
	}

	if req.DailyGoal < 0 {
		return nil, errorx.New(errorx.BadRequest, "Daily goal must not be negative")
	}

	userID := xcontext.RequestUserID(ctx)
	profile, err := d.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found profile")
		}

		xcontext.Logger(ctx).Errorf("Cannot get profile: %v", err)
		return nil, errorx.Unknown
	}

	if _, err := d.activityRepo.GetByName(ctx, userID, name); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "Activity with this name already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot check existing activity: %v", err)
		return nil, errorx.Unknown
	}

	activity := &entity.Activity{
		Base: entity.Base{
			ID:      uuid.NewString(),
			ShortID: crypto.GenerateShortID(),
		},
		UserID:      userID,
		Name:        name,
		Description: req.Description,
		DailyGoal:   req.DailyGoal,
		// The weekly goal is derived once at creation and evolves
		// independently afterwards.
		WeeklyGoal: req.DailyGoal * float64(profile.NumberOfWorkDays),
	}
	if err := d.activityRepo.Create(ctx, activity); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create activity: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateActivityResponse{Activity: model.ConvertActivity(activity)}, nil
}

func (d *activityDomain) GetList(
	ctx context.Context, req *model.GetActivitiesRequest,
) (*model.GetActivitiesResponse, error) {
	activities, err := d.activityRepo.GetList(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get activities: %v", err)
		return nil, errorx.Unknown
	}

	resp := make([]model.Activity, 0, len(activities))
	for i := range activities {
		resp = append(resp, model.ConvertActivity(&activities[i]))
	}

	return &model.GetActivitiesResponse{Activities: resp}, nil
}

func (d *activityDomain) Get(
	ctx context.Context, req *model.GetActivityRequest,
) (*model.GetActivityResponse, error) {
	activity, err := d.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &model.GetActivityResponse{Activity: model.ConvertActivity(activity)}, nil
}

func (d *activityDomain) Update(
	ctx context.Context, req *model.UpdateActivityRequest,
) (*model.UpdateActivityResponse, error) {
	activity, err := d.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if name := strings.TrimSpace(req.Name); name != "" && name != activity.Name {
		if _, err := d.activityRepo.GetByName(ctx, activity.UserID, name); err == nil {
			return nil, errorx.New(errorx.AlreadyExists, "Activity with this name already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot check existing activity: %v", err)
			return nil, errorx.Unknown
		}

		updates["name"] = name
	}

	if req.Description != "" {
		updates["description"] = req.Description
	}

	if req.DailyGoal != 0 {
		if req.DailyGoal < 0 {
			return nil, errorx.New(errorx.BadRequest, "Daily goal must not be negative")
		}

		updates["daily_goal"] = req.DailyGoal
	}

	if req.WeeklyGoal != 0 {
		if req.WeeklyGoal < 0 {
			return nil, errorx.New(errorx.BadRequest, "Weekly goal must not be negative")
		}

		updates["weekly_goal"] = req.WeeklyGoal
	}

	if len(updates) > 0 {
		if err := d.activityRepo.UpdateByID(ctx, activity.ID, updates); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update activity: %v", err)
			return nil, errorx.Unknown
		}

		activity, err = d.activityRepo.GetByID(ctx, activity.ID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot reload activity: %v", err)
			return nil, errorx.Unknown
		}
	}

	return &model.UpdateActivityResponse{Activity: model.ConvertActivity(activity)}, nil
}

func (d *activityDomain) Delete(
	ctx context.Context, req *model.DeleteActivityRequest,
) (*model.DeleteActivityResponse, error) {
	activity, err := d.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.activityRepo.DeleteByID(ctx, activity.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete activity: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteActivityResponse{}, nil
}
