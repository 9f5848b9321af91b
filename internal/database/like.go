package database

import (
	"errors"

	"github.com/thereayou/gamehub/internal/models"
	"gorm.io/gorm"
)

// ErrLikeConflict is returned when a concurrent toggle changed the like
// state between the read and the write. The caller can retry the toggle.
var ErrLikeConflict = errors.New("like was modified concurrently")

// ToggleLike flips the (user, topic) like and mirrors the change onto the
// topic's like_count inside the same transaction. Both branches verify
// their writes matched exactly one row, so a lost race rolls the whole
// transaction back instead of drifting the counter.
func (d *Database) ToggleLike(topicID, userID uint) (bool, error) {
	liked := false
	err := d.db.Transaction(func(tx *gorm.DB) error {
		var like models.Like
		err := tx.Where("user_id = ? AND topic_id = ?", userID, topicID).First(&like).Error
		switch {
		case err == nil:
			return removeLike(tx, topicID, userID)
		case errors.Is(err, gorm.ErrRecordNotFound):
			liked = true
			return addLike(tx, topicID, userID)
		default:
			return err
		}
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

// addLike inserts the row and increments the counter. A concurrent
// duplicate insert fails on the composite unique index; a topic deleted
// after the handler's existence check fails the counter guard.
func addLike(tx *gorm.DB, topicID, userID uint) error {
	if err := tx.Create(&models.Like{UserID: userID, TopicID: topicID}).Error; err != nil {
		return err
	}
	return bumpLikeCount(tx, topicID, 1)
}

// removeLike deletes by (user_id, topic_id) and decrements only when the
// delete actually matched a row. A zero-row delete means another
// transaction removed the like first.
func removeLike(tx *gorm.DB, topicID, userID uint) error {
	res := tx.Where("user_id = ? AND topic_id = ?", userID, topicID).Delete(&models.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLikeConflict
	}
	return bumpLikeCount(tx, topicID, -1)
}

func bumpLikeCount(tx *gorm.DB, topicID uint, delta int) error {
	res := tx.Model(&models.Topic{}).Where("id = ?", topicID).
		UpdateColumn("like_count", gorm.Expr("like_count + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// HasLiked reports whether the user currently likes the topic.
func (d *Database) HasLiked(topicID, userID uint) (bool, error) {
	var count int64
	err := d.db.Model(&models.Like{}).
		Where("user_id = ? AND topic_id = ?", userID, topicID).
		Count(&count).Error
	return count > 0, err
}
