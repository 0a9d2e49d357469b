package models

import (
	"math"
	"time"
)

// Reading statuses a book can hold on a user's shelf.
const (
	StatusWantToRead       = "Want to Read"
	StatusCurrentlyReading = "Currently Reading"
	StatusRead             = "Read"
)

// ValidStatus reports whether s is one of the three shelf statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusWantToRead, StatusCurrentlyReading, StatusRead:
		return true
	default:
		return false
	}
}

// LibraryRecord tracks one user's relationship to one book: shelf status,
// page position and derived completion percentage. At most one record exists
// per (user, book); writes go through an upsert keyed on that pair.
type LibraryRecord struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_book" json:"user_id"`
	BookID      int64     `gorm:"not null;uniqueIndex:idx_user_book" json:"book_id"`
	Status      string    `gorm:"type:text;not null" json:"status"`
	CurrentPage int       `gorm:"default:0" json:"current_page"`
	Progress    int       `gorm:"default:0" json:"progress"` // 0-100
	Deleted     bool      `gorm:"default:false" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Associations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Book *Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

func (LibraryRecord) TableName() string {
	return "library_records"
}

// ComputeProgress derives the completion percentage from a page position.
// A zero or negative page total is treated as 1 to avoid dividing by zero.
func ComputeProgress(currentPage, totalPages int) int {
	if totalPages <= 0 {
		totalPages = 1
	}
	p := int(math.Round(float64(currentPage) / float64(totalPages) * 100))
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}
