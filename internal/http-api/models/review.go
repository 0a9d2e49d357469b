package models

import "time"

type Review struct {
	ID      int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID  string `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_book_review"`
	BookID  int64  `json:"book_id" gorm:"not null;uniqueIndex:idx_user_book_review"`
	Rating  int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment string `json:"comment" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Book Book `json:"book,omitempty" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "reviews"
}
