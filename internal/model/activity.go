package model

import "time"

type Activity struct {
	ID              string    `json:"id"`
	ShortID         string    `json:"short_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DailyGoal       float64   `json:"daily_goal"`
	WeeklyGoal      float64   `json:"weekly_goal"`
	TotalTimeOnTask float64   `json:"total_time_on_task"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateActivityRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DailyGoal   float64 `json:"daily_goal"`
}

type CreateActivityResponse struct {
	Activity Activity `json:"activity"`
}

func (CreateActivityResponse) Message() string {
	return "Activity created successfully"
}

func (CreateActivityResponse) StatusCode() int {
	return 201
}

type GetActivitiesRequest struct{}

type GetActivitiesResponse struct {
	Activities []Activity `json:"activities"`
}

func (GetActivitiesResponse) Message() string {
	return "Activities retrieved successfully"
}

type GetActivityRequest struct {
	ID string `json:"id"`
}

type GetActivityResponse struct {
	Activity Activity `json:"activity"`
}

func (GetActivityResponse) Message() string {
	return "Activity retrieved successfully"
}

// UpdateActivityRequest applies partial-update semantics: only non-zero
// fields are written.
type UpdateActivityRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DailyGoal   float64 `json:"daily_goal"`
	WeeklyGoal  float64 `json:"weekly_goal"`
}

type UpdateActivityResponse struct {
	Activity Activity `json:"activity"`
}

func (UpdateActivityResponse) Message() string {
	return "Activity updated successfully"
}

type DeleteActivityRequest struct {
	ID string `json:"id"`
}

type DeleteActivityResponse struct{}

func (DeleteActivityResponse) Message() string {
	return "Activity deleted successfully"
}
