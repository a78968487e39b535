package model

import "time"

type User struct {
	ID        string    `json:"id"`
	ShortID   string    `json:"short_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`

	Profile *Profile `json:"profile,omitempty"`
}

type Profile struct {
	ID                  string    `json:"id"`
	ShortID             string    `json:"short_id"`
	UserID              string    `json:"user_id"`
	FullName            string    `json:"full_name"`
	Username            string    `json:"username"`
	Bio                 string    `json:"bio"`
	Location            string    `json:"location"`
	ProfilePictureURL   string    `json:"profile_picture_url"`
	WeeklyWorkHoursGoal float64   `json:"weekly_work_hours_goal"`
	NumberOfWorkDays    int       `json:"number_of_work_days"`
	TotalProductiveTime float64   `json:"total_productive_time"`
	TotalWastedTime     float64   `json:"total_wasted_time"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
