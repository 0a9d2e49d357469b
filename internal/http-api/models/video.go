package models

import "time"

// Video is a tutorial video shown on the help pages, managed by admins.
type Video struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"not null"`
	URL         string    `json:"url" gorm:"not null"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Video) TableName() string {
	return "videos"
}
