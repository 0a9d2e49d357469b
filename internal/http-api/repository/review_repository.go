package repository

import (
	"context"

	"bookworm/internal/http-api/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, userID string, bookID int64) error
	GetByUserAndBook(ctx context.Context, userID string, bookID int64) (*models.Review, error)
	GetByBook(ctx context.Context, bookID int64, page, pageSize int) ([]models.Review, int64, error)
	AverageRating(ctx context.Context, bookID int64) (float64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *reviewRepository) Delete(ctx context.Context, userID string, bookID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&models.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reviewRepository) GetByUserAndBook(ctx context.Context, userID string, bookID int64) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetByBook(ctx context.Context, bookID int64, page, pageSize int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("book_id = ?", bookID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("book_id = ?", bookID).
		Order("created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *reviewRepository) AverageRating(ctx context.Context, bookID int64) (float64, error) {
	var avg *float64
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("book_id = ?", bookID).
		Select("AVG(rating)").
		Scan(&avg).Error; err != nil {
		return 0, err
	}
	if avg == nil {
		// no reviews left
		return 0, nil
	}
	return *avg, nil
}
