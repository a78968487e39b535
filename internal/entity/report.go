package entity

import "time"

// Report is one dated record of time spent on an activity. Reports are
// immutable once created except for soft delete.
type Report struct {
	Base
	ActivityID string `gorm:"index"`

	// Date is the UTC timestamp the logged time belongs to.
	Date time.Time `gorm:"index"`

	TimeOnTask float64
	TimeWasted float64
	Comment    string
}
