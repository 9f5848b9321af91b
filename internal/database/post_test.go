package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thereayou/gamehub/internal/models"
)

func TestCreatePostLoadsAuthor(t *testing.T) {
	d := newTestDB(t)
	user := seedUser(t, d, "alice")
	topic := seedTopic(t, d, user.ID, "thread", time.Now())

	post := &models.Post{
		Content:   "nice guide",
		TopicID:   topic.ID,
		CreatedBy: user.ID,
		CreatedAt: time.Now(),
	}
	require.NoError(t, d.CreatePost(post))

	assert.NotZero(t, post.ID)
	assert.Equal(t, "alice", post.Author.Username)
}

func TestGetTopicPostsScopedToTopic(t *testing.T) {
	d := newTestDB(t)
	user := seedUser(t, d, "alice")
	first := seedTopic(t, d, user.ID, "first", time.Now())
	second := seedTopic(t, d, user.ID, "second", time.Now())

	require.NoError(t, d.CreatePost(&models.Post{Content: "on first", TopicID: first.ID, CreatedBy: user.ID, CreatedAt: time.Now()}))
	require.NoError(t, d.CreatePost(&models.Post{Content: "on second", TopicID: second.ID, CreatedBy: user.ID, CreatedAt: time.Now()}))

	posts, err := d.GetTopicPosts(first.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "on first", posts[0].Content)
}

func TestDeletePost(t *testing.T) {
	d := newTestDB(t)
	user := seedUser(t, d, "alice")
	topic := seedTopic(t, d, user.ID, "thread", time.Now())

	post := &models.Post{Content: "oops", TopicID: topic.ID, CreatedBy: user.ID, CreatedAt: time.Now()}
	require.NoError(t, d.CreatePost(post))

	require.NoError(t, d.DeletePost(post.ID))

	_, err := d.GetPost(post.ID)
	assert.Error(t, err)
}
