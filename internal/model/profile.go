package model

type GetProfileRequest struct{}

type GetProfileResponse struct {
	Profile Profile `json:"profile"`
}

func (GetProfileResponse) Message() string {
	return "Profile retrieved successfully"
}

// UpdateProfileRequest applies partial-update semantics: only non-zero fields
// are written.
type UpdateProfileRequest struct {
	FullName            string  `json:"full_name"`
	Username            string  `json:"username"`
	Bio                 string  `json:"bio"`
	Location            string  `json:"location"`
	ProfilePictureURL   string  `json:"profile_picture_url"`
	WeeklyWorkHoursGoal float64 `json:"weekly_work_hours_goal"`
	NumberOfWorkDays    int     `json:"number_of_work_days"`
}

type UpdateProfileResponse struct {
	Profile Profile `json:"profile"`
}

func (UpdateProfileResponse) Message() string {
	return "Profile Updated Successfully!"
}

type DeleteProfileRequest struct{}

type DeleteProfileResponse struct {
	Profile Profile `json:"profile"`
}

func (DeleteProfileResponse) Message() string {
	return "Profile deleted successfully"
}
