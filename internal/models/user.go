package models

// User represents a registered account. The password column holds a bcrypt
// hash and is never serialized.
type User struct {
	Base
	Email      string `gorm:"uniqueIndex;not null" json:"email"`
	Username   string `gorm:"uniqueIndex;not null;size:50" json:"username"`
	Password   string `gorm:"not null" json:"-"`
	IsActive   bool   `gorm:"default:true" json:"is_active"`
	IsVerified bool   `gorm:"default:false" json:"is_verified"`
}
