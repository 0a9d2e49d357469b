package models

import "time"

type Book struct {
	ID            int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title         string     `json:"title" gorm:"not null"`
	Author        *string    `json:"author,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Pages         int        `json:"pages" gorm:"default:0"`
	CoverURL      *string    `json:"cover_url,omitempty"`
	AverageRating *float64   `json:"average_rating,omitempty" gorm:"type:decimal(3,2)"`
	CreatedAt     *time.Time `json:"created_at,omitempty" gorm:"autoCreateTime"`

	// association
	Genres []Genre `json:"genres,omitempty" gorm:"many2many:book_genres;constraint:OnDelete:CASCADE;"`
}

func (Book) TableName() string {
	return "books"
}
