package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/gamehub/internal/database"
	"github.com/thereayou/gamehub/internal/handlers/dto"
	"github.com/thereayou/gamehub/internal/models"
)

type TopicHandler struct {
	db *database.Database
}

func NewTopicHandler(db *database.Database) *TopicHandler {
	return &TopicHandler{db: db}
}

// CreateTopic creates a discussion topic.
func (h *TopicHandler) CreateTopic(c *gin.Context) {
	var req dto.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tags, err := models.SerializeTags(req.Tags)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tags"})
		return
	}

	topic := &models.Topic{
		Title:     req.Title,
		Content:   req.Content,
		Game:      req.Game,
		Category:  req.Category,
		Tags:      tags,
		CreatedBy: req.CreatedBy,
		CreatedAt: time.Now(),
	}

	if err := h.db.CreateTopic(topic); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create topic"})
		return
	}

	// Reload with the creator joined in
	if full, err := h.db.GetTopic(topic.ID); err == nil {
		topic = full
	} else {
		log.Printf("topic %d created but reload failed: %v", topic.ID, err)
	}

	c.JSON(http.StatusOK, formatTopicResponse(topic))
}

// GetTopics lists every topic newest first.
func (h *TopicHandler) GetTopics(c *gin.Context) {
	topics, err := h.db.GetTopics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get topics"})
		return
	}

	result := make([]gin.H, len(topics))
	for i := range topics {
		result[i] = formatTopicResponse(&topics[i])
	}

	c.JSON(http.StatusOK, result)
}

// GetTopic returns a topic with its posts, oldest first.
func (h *TopicHandler) GetTopic(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	topic, err := h.db.GetTopic(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "topic not found"})
		return
	}

	response := formatTopicResponse(topic)
	posts := make([]gin.H, len(topic.Posts))
	for i := range topic.Posts {
		posts[i] = formatPostResponse(&topic.Posts[i])
	}
	response["posts"] = posts

	c.JSON(http.StatusOK, response)
}

// UpdateTopic edits title/content/tags. Only the creator may do this.
func (h *TopicHandler) UpdateTopic(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	topic, err := h.db.GetTopic(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "topic not found"})
		return
	}

	if topic.CreatedBy != req.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the topic creator can update it"})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Content != "" {
		updates["content"] = req.Content
	}
	if req.Tags != nil {
		tags, err := models.SerializeTags(req.Tags)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tags"})
			return
		}
		updates["tags"] = tags
	}

	if len(updates) > 0 {
		if err := h.db.UpdateTopic(id, updates); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update topic"})
			return
		}
	}

	updated, err := h.db.GetTopic(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load topic"})
		return
	}

	c.JSON(http.StatusOK, formatTopicResponse(updated))
}

// DeleteTopic removes a topic with all its posts and likes. Only the
// creator may do this.
func (h *TopicHandler) DeleteTopic(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseUintParam(c, "userId")
	if !ok {
		return
	}

	topic, err := h.db.GetTopic(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "topic not found"})
		return
	}

	if topic.CreatedBy != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the topic creator can delete it"})
		return
	}

	if err := h.db.DeleteTopic(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete topic"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "topic deleted successfully"})
}

// formatTopicResponse builds the topic payload with normalized tags.
func formatTopicResponse(topic *models.Topic) gin.H {
	resp := gin.H{
		"id":        topic.ID,
		"title":     topic.Title,
		"content":   topic.Content,
		"game":      topic.Game,
		"category":  topic.Category,
		"tags":      models.ParseTags(topic.Tags),
		"createdBy": topic.CreatedBy,
		"likes":     topic.LikeCount,
		"replies":   topic.ReplyCount,
		"createdAt": topic.CreatedAt,
	}
	if topic.Creator.ID != 0 {
		resp["creator"] = gin.H{
			"id":        topic.Creator.ID,
			"username":  topic.Creator.Username,
			"avatarUrl": topic.Creator.AvatarURL,
		}
	}
	return resp
}

// parseUintParam reads a numeric path parameter, replying 400 on garbage.
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(v), true
}
