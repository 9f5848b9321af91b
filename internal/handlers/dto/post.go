package dto

type CreatePostRequest struct {
	Content   string `json:"content" binding:"required"`
	CreatedBy uint   `json:"createdBy" binding:"required"`
}
