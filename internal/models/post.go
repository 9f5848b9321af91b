package models

import (
	"time"
)

type Post struct {
	ID        uint   `gorm:"primaryKey"`
	Content   string `gorm:"not null"`
	TopicID   uint   `gorm:"not null;index"`
	CreatedBy uint   `gorm:"not null"`
	CreatedAt time.Time

	Author User `gorm:"foreignKey:CreatedBy"`
}
