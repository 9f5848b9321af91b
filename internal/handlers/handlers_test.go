package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/thereayou/gamehub/internal/database"
	"github.com/thereayou/gamehub/internal/middleware"
	"github.com/thereayou/gamehub/pkg/auth"
)

// newTestRouter wires the full API against an in-memory sqlite store.
// The route table mirrors cmd/server; redis is absent, so logout
// blacklisting is a no-op in tests.
func newTestRouter(t *testing.T) (*gin.Engine, *database.Database) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	db := database.New(gdb)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { db.Close() })

	jwtMgr := auth.NewJWTManager("test-secret", time.Hour)
	authMw := middleware.AuthMiddleware(jwtMgr, db, nil)

	authH := NewAuthHandler(db, jwtMgr, nil)
	userH := NewUserHandler(db)
	topicH := NewTopicHandler(db)
	postH := NewPostHandler(db)
	likeH := NewLikeHandler(db)

	r := gin.New()
	api := r.Group("/api")

	api.POST("/auth/register", authH.Register)
	api.POST("/auth/login", authH.Login)
	api.POST("/auth/logout", authH.Logout)

	api.GET("/users/me", authMw, userH.GetMe)
	api.PUT("/users/me", authMw, userH.UpdateMe)
	api.PUT("/users/me/password", authMw, userH.ChangePassword)
	api.GET("/users/:id", userH.GetUser)
	api.DELETE("/users/:id", authMw, userH.DeleteUser)

	api.POST("/topics", topicH.CreateTopic)
	api.GET("/topics", topicH.GetTopics)
	api.GET("/topics/:id", topicH.GetTopic)
	api.PUT("/topics/:id", topicH.UpdateTopic)
	api.DELETE("/topics/:id/:userId", topicH.DeleteTopic)
	api.POST("/topics/:id/like", likeH.ToggleLike)
	api.GET("/topics/:id/like", likeH.HasLiked)
	api.POST("/topics/:id/posts", postH.CreatePost)
	api.GET("/topics/:id/posts", postH.GetTopicPosts)
	api.DELETE("/posts/:id", postH.DeletePost)

	api.GET("/discussions", topicH.GetTopics)
	api.GET("/discussions/:id", topicH.GetTopic)

	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, rr *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

// registerUser creates an account through the API and returns (id, token).
func registerUser(t *testing.T, r *gin.Engine, username string) (uint, string) {
	t.Helper()

	rr := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	body := decodeBody(t, rr)
	user := body["user"].(map[string]interface{})
	return uint(user["id"].(float64)), body["token"].(string)
}

// createTopic makes a topic through the API and returns its id.
func createTopic(t *testing.T, r *gin.Engine, creatorID uint, title string, tags []interface{}) uint {
	t.Helper()

	payload := gin.H{
		"title":     title,
		"content":   "some content",
		"game":      "Valorant",
		"category":  "Guides",
		"createdBy": creatorID,
	}
	if tags != nil {
		payload["tags"] = tags
	}

	rr := doJSON(t, r, http.MethodPost, "/api/topics", payload, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	return uint(decodeBody(t, rr)["id"].(float64))
}
