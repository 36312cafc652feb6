package models

import "time"

const AnonymousUserName = "Anonymous"

type User struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"not null"`
	Email              *string
	PasswordHash       string    `gorm:"not null;default:''"`
	IsAnonymous        bool      `gorm:"not null;default:false"`
	MustChangePassword bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time `gorm:"not null"`
}
