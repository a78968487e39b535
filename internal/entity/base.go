package entity

import (
	"time"

	"gorm.io/gorm"
)

// Base is embedded by every entity. DeletedAt makes gorm apply the
// "not deleted" predicate to every query, so tombstoned rows never leak
// through normal lookups; callers that must see them use Unscoped
// explicitly.
type Base struct {
	ID        string `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	// ShortID is the 8-character human-facing code exposed alongside the
	// primary key.
	ShortID string `gorm:"unique"`
}

func MigrateTable(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Profile{},
		&Activity{},
		&Report{},
	)
}
