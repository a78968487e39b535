package entity

type Profile struct {
	Base
	UserID   string `gorm:"uniqueIndex"`
	FullName string

	// Username uniqueness is enforced at the mutation boundary for the
	// same reason as User.Email.
	Username string `gorm:"index"`

	Bio               string
	Location          string
	ProfilePictureURL string

	WeeklyWorkHoursGoal float64
	NumberOfWorkDays    int

	// Running totals over all of the user's reports, maintained with atomic
	// storage-layer increments on every report creation.
	TotalProductiveTime float64
	TotalWastedTime     float64
}
