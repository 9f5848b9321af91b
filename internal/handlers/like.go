package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/thereayou/gamehub/internal/database"
	"github.com/thereayou/gamehub/internal/handlers/dto"
)

type LikeHandler struct {
	db *database.Database
}

func NewLikeHandler(db *database.Database) *LikeHandler {
	return &LikeHandler{db: db}
}

// ToggleLike flips the caller's like on a topic: present removes it,
// absent adds it. One endpoint, no separate like/unlike.
func (h *LikeHandler) ToggleLike(c *gin.Context) {
	topicID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req dto.ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	exists, err := h.db.TopicExists(topicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check topic"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "topic not found"})
		return
	}

	liked, err := h.db.ToggleLike(topicID, req.UserID)
	switch {
	case errors.Is(err, database.ErrLikeConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "like changed concurrently, retry"})
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "topic not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle like"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// HasLiked reports whether the given user likes the topic.
func (h *LikeHandler) HasLiked(c *gin.Context) {
	topicID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	userIDStr := c.Query("userId")
	if userIDStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}
	userID, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId"})
		return
	}

	liked, err := h.db.HasLiked(topicID, uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check like"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}
