package dto

import (
	"github.com/thereayou/gamehub/internal/models"
)

type CreateTopicRequest struct {
	Title     string          `json:"title" binding:"required"`
	Content   string          `json:"content" binding:"required"`
	Game      string          `json:"game" binding:"required"`
	Category  string          `json:"category" binding:"required"`
	Tags      []models.TagRef `json:"tags"`
	CreatedBy uint            `json:"createdBy" binding:"required"`
}

// UpdateTopicRequest carries the mutable topic fields. Game, category and
// creator are fixed at creation.
type UpdateTopicRequest struct {
	Title   string          `json:"title"`
	Content string          `json:"content"`
	Tags    []models.TagRef `json:"tags"`
	UserID  uint            `json:"userId" binding:"required"`
}

type ToggleLikeRequest struct {
	UserID uint `json:"userId" binding:"required"`
}
