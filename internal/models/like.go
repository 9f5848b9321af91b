package models

import (
	"time"
)

// Like is a per-user endorsement of a topic. The composite unique index
// guarantees at most one row per (user, topic) pair.
type Like struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_likes_user_topic"`
	TopicID   uint `gorm:"not null;uniqueIndex:idx_likes_user_topic"`
	CreatedAt time.Time
}
