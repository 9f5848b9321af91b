package database

import (
	"github.com/thereayou/gamehub/internal/models"
)

func (d *Database) CreatePost(post *models.Post) error {
	if err := d.db.Create(post).Error; err != nil {
		return err
	}
	return d.db.Preload("Author").First(post, post.ID).Error
}

func (d *Database) GetPost(id uint) (*models.Post, error) {
	post := models.Post{}
	if err := d.db.Preload("Author").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetTopicPosts returns the posts of a topic oldest first, with authors.
func (d *Database) GetTopicPosts(topicID uint) ([]models.Post, error) {
	var posts []models.Post
	err := d.db.
		Where("topic_id = ?", topicID).
		Order("created_at ASC, id ASC").
		Preload("Author").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (d *Database) DeletePost(id uint) error {
	return d.db.Delete(&models.Post{}, id).Error
}
