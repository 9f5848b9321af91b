package main

import (
	"github.com/gin-gonic/gin"

	"github.com/thereayou/gamehub/internal/handlers"
)

type Handlers struct {
	Auth   *handlers.AuthHandler
	User   *handlers.UserHandler
	Topic  *handlers.TopicHandler
	Post   *handlers.PostHandler
	Like   *handlers.LikeHandler
	Upload *handlers.UploadHandler
}

func APIEndpoints(r *gin.Engine, h *Handlers, authMw gin.HandlerFunc, uploadDir string) {
	r.Static("/uploads", uploadDir)

	api := r.Group("/api")

	// Auth endpoints
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
	}

	// Profile endpoints
	users := api.Group("/users")
	{
		users.GET("/me", authMw, h.User.GetMe)
		users.PUT("/me", authMw, h.User.UpdateMe)
		users.PUT("/me/password", authMw, h.User.ChangePassword)
		users.GET("/:id", h.User.GetUser)
		users.DELETE("/:id", authMw, h.User.DeleteUser)
	}

	// Forum endpoints
	topics := api.Group("/topics")
	{
		topics.POST("", h.Topic.CreateTopic)
		topics.GET("", h.Topic.GetTopics)
		topics.GET("/:id", h.Topic.GetTopic)
		topics.PUT("/:id", h.Topic.UpdateTopic)
		topics.DELETE("/:id/:userId", h.Topic.DeleteTopic)

		topics.POST("/:id/like", h.Like.ToggleLike)
		topics.GET("/:id/like", h.Like.HasLiked)

		topics.POST("/:id/posts", h.Post.CreatePost)
		topics.GET("/:id/posts", h.Post.GetTopicPosts)
	}

	api.DELETE("/posts/:id", h.Post.DeletePost)

	// Read aliases used by the dashboard pages
	discussions := api.Group("/discussions")
	{
		discussions.GET("", h.Topic.GetTopics)
		discussions.GET("/:id", h.Topic.GetTopic)
	}

	api.POST("/uploads", authMw, h.Upload.Upload)
}
