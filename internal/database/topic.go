package database

import (
	"github.com/thereayou/gamehub/internal/models"
	"gorm.io/gorm"
)

func (d *Database) CreateTopic(topic *models.Topic) error {
	return d.db.Create(topic).Error
}

// GetTopics returns every topic newest first, with creators and reply
// counts filled in.
func (d *Database) GetTopics() ([]models.Topic, error) {
	var topics []models.Topic
	err := d.db.
		Preload("Creator").
		Order("created_at DESC, id DESC").
		Find(&topics).Error
	if err != nil {
		return nil, err
	}

	var counts []struct {
		TopicID uint
		N       int64
	}
	err = d.db.Model(&models.Post{}).
		Select("topic_id, COUNT(*) AS n").
		Group("topic_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	byTopic := make(map[uint]int64, len(counts))
	for _, c := range counts {
		byTopic[c.TopicID] = c.N
	}
	for i := range topics {
		topics[i].ReplyCount = byTopic[topics[i].ID]
	}

	return topics, nil
}

// GetTopic returns a topic with its creator and posts, oldest post first.
func (d *Database) GetTopic(id uint) (*models.Topic, error) {
	topic := models.Topic{}
	err := d.db.
		Preload("Creator").
		Preload("Posts", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Preload("Posts.Author").
		First(&topic, id).Error
	if err != nil {
		return nil, err
	}
	topic.ReplyCount = int64(len(topic.Posts))
	return &topic, nil
}

func (d *Database) TopicExists(id uint) (bool, error) {
	var count int64
	err := d.db.Model(&models.Topic{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// UpdateTopic applies the given column updates to a topic. Only title,
// content and tags are mutable after creation.
func (d *Database) UpdateTopic(id uint, updates map[string]interface{}) error {
	return d.db.Model(&models.Topic{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteTopic removes the topic together with its posts and likes in one
// transaction, so a partial failure never leaves orphan rows behind.
func (d *Database) DeleteTopic(id uint) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("topic_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("topic_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Topic{}, id).Error
	})
}
