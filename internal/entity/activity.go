package entity

type Activity struct {
	Base
	UserID string `gorm:"index"`

	// Name is unique per user, not globally. Two users may both track
	// "Reading".
	Name        string `gorm:"index"`
	Description string

	DailyGoal float64

	// WeeklyGoal is derived as DailyGoal times the profile's work days at
	// creation time, then edited independently.
	WeeklyGoal float64

	TotalTimeOnTask float64
}
