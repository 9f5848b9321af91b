package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/gamehub/internal/database"
	"github.com/thereayou/gamehub/internal/handlers/dto"
	"github.com/thereayou/gamehub/internal/models"
)

type PostHandler struct {
	db *database.Database
}

func NewPostHandler(db *database.Database) *PostHandler {
	return &PostHandler{db: db}
}

// CreatePost adds a reply to an existing topic.
func (h *PostHandler) CreatePost(c *gin.Context) {
	topicID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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

	post := &models.Post{
		Content:   req.Content,
		TopicID:   topicID,
		CreatedBy: req.CreatedBy,
		CreatedAt: time.Now(),
	}

	if err := h.db.CreatePost(post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create post"})
		return
	}

	c.JSON(http.StatusOK, formatPostResponse(post))
}

// GetTopicPosts lists the replies of a topic, oldest first.
func (h *PostHandler) GetTopicPosts(c *gin.Context) {
	topicID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	posts, err := h.db.GetTopicPosts(topicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get posts"})
		return
	}

	result := make([]gin.H, len(posts))
	for i := range posts {
		result[i] = formatPostResponse(&posts[i])
	}

	c.JSON(http.StatusOK, result)
}

// DeletePost removes a reply by id. No ownership check is performed here;
// the API trusts its caller (see tests).
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.db.DeletePost(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted successfully"})
}

func formatPostResponse(post *models.Post) gin.H {
	resp := gin.H{
		"id":        post.ID,
		"content":   post.Content,
		"topicId":   post.TopicID,
		"createdBy": post.CreatedBy,
		"createdAt": post.CreatedAt,
	}
	if post.Author.ID != 0 {
		resp["author"] = gin.H{
			"id":        post.Author.ID,
			"username":  post.Author.Username,
			"avatarUrl": post.Author.AvatarURL,
		}
	}
	return resp
}
