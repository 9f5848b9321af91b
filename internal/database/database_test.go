package database

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/thereayou/gamehub/internal/models"
)

func newTestDB(t *testing.T) *Database {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	d := New(db)
	require.NoError(t, d.Migrate())
	t.Cleanup(func() { d.Close() })
	return d
}

func seedUser(t *testing.T, d *Database, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, d.CreateUser(user))
	return user
}

func seedTopic(t *testing.T, d *Database, creatorID uint, title string, createdAt time.Time) *models.Topic {
	t.Helper()

	topic := &models.Topic{
		Title:     title,
		Content:   "some content",
		Game:      "Valorant",
		Category:  "Guides",
		CreatedBy: creatorID,
		CreatedAt: createdAt,
	}
	require.NoError(t, d.CreateTopic(topic))
	return topic
}
