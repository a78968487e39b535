package model

import "github.com/timecraft-lab/backend/internal/entity"

func ConvertUser(user *entity.User, profile *entity.Profile) User {
	resp := User{
		ID:        user.ID,
		ShortID:   user.ShortID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}

	if profile != nil {
		p := ConvertProfile(profile)
		resp.Profile = &p
	}

	return resp
}

func ConvertProfile(profile *entity.Profile) Profile {
	return Profile{
		ID:                  profile.ID,
		ShortID:             profile.ShortID,
		UserID:              profile.UserID,
		FullName:            profile.FullName,
		Username:            profile.Username,
		Bio:                 profile.Bio,
		Location:            profile.Location,
		ProfilePictureURL:   profile.ProfilePictureURL,
		WeeklyWorkHoursGoal: profile.WeeklyWorkHoursGoal,
		NumberOfWorkDays:    profile.NumberOfWorkDays,
		TotalProductiveTime: profile.TotalProductiveTime,
		TotalWastedTime:     profile.TotalWastedTime,
		CreatedAt:           profile.CreatedAt,
		UpdatedAt:           profile.UpdatedAt,
	}
}

func ConvertActivity(activity *entity.Activity) Activity {
	return Activity{
		ID:              activity.ID,
		ShortID:         activity.ShortID,
		Name:            activity.Name,
		Description:     activity.Description,
		DailyGoal:       activity.DailyGoal,
		WeeklyGoal:      activity.WeeklyGoal,
		TotalTimeOnTask: activity.TotalTimeOnTask,
		CreatedAt:       activity.CreatedAt,
		UpdatedAt:       activity.UpdatedAt,
	}
}

func ConvertReport(report *entity.Report) Report {
	return Report{
		ID:         report.ID,
		ShortID:    report.ShortID,
		ActivityID: report.ActivityID,
		Date:       report.Date,
		TimeOnTask: report.TimeOnTask,
		TimeWasted: report.TimeWasted,
		Comment:    report.Comment,
		CreatedAt:  report.CreatedAt,
	}
}
