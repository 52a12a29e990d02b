package domain

import "time"

// User represents a registered user of the system. The password is persisted
// exactly as provided; username and email carry no unique index, so duplicate
// values are accepted.
type User struct {
	ID        int64  `gorm:"primaryKey"`
	Username  string `gorm:"size:191;not null"`
	Email     string `gorm:"size:191;not null"`
	Password  string `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
