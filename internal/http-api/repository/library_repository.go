package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookworm/internal/http-api/models"

	"gorm.io/gorm"
)

type LibraryRepository interface {
	// Upsert writes the record keyed by (UserID, BookID), creating it if
	// absent. The composite unique index keeps the pair at one row even when
	// two requests race on the insert.
	Upsert(ctx context.Context, rec *models.LibraryRecord) error
	GetByUserAndBook(ctx context.Context, userID string, bookID int64) (*models.LibraryRecord, error)
	// ListByUser returns the user's non-deleted records with the book
	// populated, most recently updated first.
	ListByUser(ctx context.Context, userID string) ([]models.LibraryRecord, error)
}

type libraryRepository struct {
	db *gorm.DB
}

func NewLibraryRepository(db *gorm.DB) LibraryRepository {
	return &libraryRepository{db: db}
}

func (r *libraryRepository) Upsert(ctx context.Context, rec *models.LibraryRecord) error {
	// Try to find existing record
	var existing models.LibraryRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", rec.UserID, rec.BookID).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec.UpdatedAt = time.Now()
		createErr := r.db.WithContext(ctx).Create(rec).Error
		if createErr == nil {
			return nil
		}
		// A concurrent request created the row between our read and write;
		// fall through to the update path.
		if !IsUniqueViolation(createErr) {
			return fmt.Errorf("create library record: %w", createErr)
		}
		if err := r.db.WithContext(ctx).
			Where("user_id = ? AND book_id = ?", rec.UserID, rec.BookID).
			First(&existing).Error; err != nil {
			return fmt.Errorf("reload library record: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("find library record: %w", err)
	}

	// Update existing record
	if err := r.db.WithContext(ctx).Model(&existing).Updates(map[string]any{
		"status":       rec.Status,
		"current_page": rec.CurrentPage,
		"progress":     rec.Progress,
		"deleted":      rec.Deleted,
		"updated_at":   time.Now(),
	}).Error; err != nil {
		return fmt.Errorf("update library record: %w", err)
	}
	rec.ID = existing.ID
	return nil
}

func (r *libraryRepository) GetByUserAndBook(ctx context.Context, userID string, bookID int64) (*models.LibraryRecord, error) {
	var rec models.LibraryRecord
	if err := r.db.WithContext(ctx).
		Preload("Book").
		Preload("Book.Genres").
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *libraryRepository) ListByUser(ctx context.Context, userID string) ([]models.LibraryRecord, error) {
	var records []models.LibraryRecord

	if err := r.db.WithContext(ctx).
		Preload("Book").
		Preload("Book.Genres").
		Where("user_id = ? AND deleted = false", userID).
		Order("updated_at DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list library: %w", err)
	}

	return records, nil
}
