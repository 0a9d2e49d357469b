package repository

import (
	"context"
	"fmt"
	"strings"

	"bookworm/internal/http-api/models"

	"gorm.io/gorm"
)

type BookRepository interface {
	GetAll(ctx context.Context, page, pageSize int) ([]models.Book, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	Create(ctx context.Context, b *models.Book) error
	Update(ctx context.Context, id int64, b *models.Book) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]models.Book, error)
	ReplaceGenres(ctx context.Context, bookID int64, genreIDs []int64) error
	ListByGenres(ctx context.Context, genreIDs []int64, excludeBookIDs []int64, limit int) ([]models.Book, error)
	ListTopRated(ctx context.Context, excludeBookIDs []int64, limit int) ([]models.Book, error)
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) GetAll(ctx context.Context, page, pageSize int) ([]models.Book, int64, error) {
	var list []models.Book
	var total int64

	// Count total records
	if err := r.db.WithContext(ctx).Model(&models.Book{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Preload("Genres").
		Order("created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	var b models.Book
	if err := r.db.WithContext(ctx).Preload("Genres").First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookRepository) Create(ctx context.Context, b *models.Book) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	// GORM populates b.ID and b.CreatedAt
	return nil
}

func (r *bookRepository) Update(ctx context.Context, id int64, b *models.Book) error {
	// ensure ID set for Save
	b.ID = id
	if err := r.db.WithContext(ctx).Save(b).Error; err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Book{}, id).Error; err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}

// Search performs case-insensitive partial match on title and author.
// Splits query into tokens and requires each token to appear in at least one
// of the fields.
func (r *bookRepository) Search(ctx context.Context, query string) ([]models.Book, error) {
	var list []models.Book
	tokens := strings.Fields(query)
	db := r.db.WithContext(ctx)

	// if empty tokens, return empty list
	if len(tokens) == 0 {
		return list, nil
	}

	clauses := make([]string, 0, len(tokens))
	args := make([]interface{}, 0, len(tokens)*2)
	for _, t := range tokens {
		p := "%" + t + "%"
		// COALESCE keeps a NULL author from killing the ILIKE match
		clauses = append(clauses, "(title ILIKE ? OR COALESCE(author,'') ILIKE ?)")
		args = append(args, p, p)
	}

	where := strings.Join(clauses, " AND ")
	if err := db.Preload("Genres").Where(where, args...).Order("created_at desc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search books by title/author: %w", err)
	}
	return list, nil
}

// ReplaceGenres sets the book's genre association to exactly genreIDs.
func (r *bookRepository) ReplaceGenres(ctx context.Context, bookID int64, genreIDs []int64) error {
	tx := r.db.WithContext(ctx).Begin()
	var b models.Book
	if err := tx.First(&b, bookID).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("book not found: %w", err)
	}
	genres := make([]models.Genre, 0, len(genreIDs))
	for _, id := range genreIDs {
		genres = append(genres, models.Genre{ID: id})
	}
	if err := tx.Model(&b).Association("Genres").Replace(&genres); err != nil {
		tx.Rollback()
		return fmt.Errorf("replace genres: %w", err)
	}
	return tx.Commit().Error
}

// ListByGenres returns books carrying any of the given genres, best rated
// first, skipping excludeBookIDs.
func (r *bookRepository) ListByGenres(ctx context.Context, genreIDs []int64, excludeBookIDs []int64, limit int) ([]models.Book, error) {
	if len(genreIDs) == 0 {
		return nil, nil
	}
	var list []models.Book
	q := r.db.WithContext(ctx).
		Preload("Genres").
		Joins("JOIN book_genres bg ON bg.book_id = books.id").
		Where("bg.genre_id IN ?", genreIDs)
	if len(excludeBookIDs) > 0 {
		q = q.Where("books.id NOT IN ?", excludeBookIDs)
	}
	if err := q.Group("books.id").
		Order("average_rating DESC NULLS LAST").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list books by genres: %w", err)
	}
	return list, nil
}

// ListTopRated returns the best rated books, skipping excludeBookIDs.
func (r *bookRepository) ListTopRated(ctx context.Context, excludeBookIDs []int64, limit int) ([]models.Book, error) {
	var list []models.Book
	q := r.db.WithContext(ctx).Preload("Genres")
	if len(excludeBookIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeBookIDs)
	}
	if err := q.Order("average_rating DESC NULLS LAST").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list top rated books: %w", err)
	}
	return list, nil
}
