package entity

type User struct {
	Base

	// Email is unique among live accounts. The constraint lives at the
	// mutation boundary, not in the schema, so soft-deleted tombstones
	// never block a new registration.
	Email        string `gorm:"index"`
	PasswordHash string
}
