package models

import (
	"time"
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Bio          string
	AvatarURL    string
	BannerURL    string
	IsAdmin      bool `gorm:"not null;default:false"`
	CreatedAt    time.Time
}
