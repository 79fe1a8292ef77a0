package domain

import (
	"time"
)

// User represents a registered account. Every content record belongs
// to exactly one user via user_id.
type User struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"column:email;type:varchar(255);uniqueIndex" json:"email"`
	Password  string    `gorm:"column:password;type:varchar(255)" json:"-"`
	Name      string    `gorm:"column:name;type:varchar(100)" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }
