package models

import (
	"encoding/json"
	"time"
)

// DefaultTagColor is assigned to tags that arrive as bare strings or
// without an explicit color.
const DefaultTagColor = "#3B82F6"

type Topic struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"not null"`
	Content   string `gorm:"not null"`
	Game      string `gorm:"not null"`
	Category  string `gorm:"not null"`
	Tags      *string
	CreatedBy uint `gorm:"not null;index"`
	LikeCount int  `gorm:"column:like_count;not null;default:0"`
	CreatedAt time.Time

	ReplyCount int64 `gorm:"-"`

	Creator User   `gorm:"foreignKey:CreatedBy"`
	Posts   []Post `gorm:"foreignKey:TopicID"`
	Likes   []Like `gorm:"foreignKey:TopicID"`
}

// TagRef is a display tag attached to a topic. Topics store their tags as
// a serialized JSON list; older rows may hold bare strings instead of
// {name, color} objects.
type TagRef struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (t *TagRef) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		t.Name = name
		t.Color = DefaultTagColor
		return nil
	}

	type tagRef TagRef
	var raw tagRef
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Color == "" {
		raw.Color = DefaultTagColor
	}
	*t = TagRef(raw)
	return nil
}

// SerializeTags converts tags into the stored column form. Empty input
// stores as NULL.
func SerializeTags(tags []TagRef) (*string, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	for i := range tags {
		if tags[i].Color == "" {
			tags[i].Color = DefaultTagColor
		}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	s := string(data)
	return &s, nil
}

// ParseTags reads the stored column back into normalized tags.
func ParseTags(stored *string) []TagRef {
	if stored == nil || *stored == "" {
		return []TagRef{}
	}
	var tags []TagRef
	if err := json.Unmarshal([]byte(*stored), &tags); err != nil {
		return []TagRef{}
	}
	return tags
}
