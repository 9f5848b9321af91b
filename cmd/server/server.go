package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/thereayou/gamehub/internal/database"
	"github.com/thereayou/gamehub/internal/handlers"
	"github.com/thereayou/gamehub/internal/middleware"
	"github.com/thereayou/gamehub/pkg/auth"
)

type Server struct {
	Router     *gin.Engine
	DB         *database.Database
	Redis      *redis.Client
	JWTManager *auth.JWTManager
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	db, err := database.Open()
	if err != nil {
		log.Fatalf("database open failed: %v", err)
	}

	var rdb *redis.Client
	if url := os.Getenv("REDIS_URL"); url != "" {
		redisOpts, err := redis.ParseURL(url)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(redisOpts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Redis connect failed: %v", err)
		}
	} else {
		log.Println("REDIS_URL not set, logout token blacklisting disabled")
	}

	jwtMgr := auth.NewJWTManager(
		os.Getenv("JWT_SECRET"),
		24*time.Hour,
	)

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	h := &Handlers{
		Auth:   handlers.NewAuthHandler(db, jwtMgr, rdb),
		User:   handlers.NewUserHandler(db),
		Topic:  handlers.NewTopicHandler(db),
		Post:   handlers.NewPostHandler(db),
		Like:   handlers.NewLikeHandler(db),
		Upload: handlers.NewUploadHandler(uploadDir),
	}

	router := gin.Default()
	APIEndpoints(router, h, middleware.AuthMiddleware(jwtMgr, db, rdb), uploadDir)

	return &Server{
		Router:     router,
		DB:         db,
		Redis:      rdb,
		JWTManager: jwtMgr,
	}
}

func (s *Server) Run() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)
	if err := s.Router.Run(":" + port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
