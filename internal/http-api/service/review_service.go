package service

import (
	"context"
	"errors"
	"log/slog"

	"bookworm/internal/http-api/dto"
	"bookworm/internal/http-api/models"
	"bookworm/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewService interface {
	CreateOrUpdate(ctx context.Context, userID string, bookID int64, rating int, comment string) (*dto.ReviewResponse, error)
	Delete(ctx context.Context, userID string, bookID int64) error
	GetBookReviews(ctx context.Context, bookID int64, page, pageSize int) (*dto.PaginatedReviewResponse, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	bookRepo   repository.BookRepository
	logger     *slog.Logger
}

func NewReviewService(reviewRepo repository.ReviewRepository, bookRepo repository.BookRepository, logger *slog.Logger) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		bookRepo:   bookRepo,
		logger:     logger,
	}
}

// CreateOrUpdate writes the user's review for a book and refreshes the book's
// denormalized average rating.
func (s *reviewService) CreateOrUpdate(ctx context.Context, userID string, bookID int64, rating int, comment string) (*dto.ReviewResponse, error) {
	// Check if book exists
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	existing, err := s.reviewRepo.GetByUserAndBook(ctx, userID, bookID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var review *models.Review

	if existing != nil {
		existing.Rating = rating
		existing.Comment = comment
		if err := s.reviewRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		review = existing
	} else {
		newReview := &models.Review{
			UserID:  userID,
			BookID:  bookID,
			Rating:  rating,
			Comment: comment,
		}
		if err := s.reviewRepo.Create(ctx, newReview); err != nil {
			return nil, err
		}
		// Reload with user data
		review, err = s.reviewRepo.GetByUserAndBook(ctx, userID, bookID)
		if err != nil {
			return nil, err
		}
	}

	s.refreshAverageRating(ctx, bookID)

	return dto.FromModelToReviewResponse(review), nil
}

func (s *reviewService) Delete(ctx context.Context, userID string, bookID int64) error {
	if err := s.reviewRepo.Delete(ctx, userID, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	s.refreshAverageRating(ctx, bookID)
	return nil
}

func (s *reviewService) GetBookReviews(ctx context.Context, bookID int64, page, pageSize int) (*dto.PaginatedReviewResponse, error) {
	// Check if book exists
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	reviews, total, err := s.reviewRepo.GetByBook(ctx, bookID, page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, *dto.FromModelToReviewResponse(&review))
	}

	return dto.NewPaginatedReviewResponse(responses, int(total), page, pageSize), nil
}

// refreshAverageRating recomputes and stores the book's average rating.
// Failures are logged, not surfaced: the review write already succeeded.
func (s *reviewService) refreshAverageRating(ctx context.Context, bookID int64) {
	avg, err := s.reviewRepo.AverageRating(ctx, bookID)
	if err != nil {
		s.logger.Warn("failed to compute average rating", "book_id", bookID, "error", err)
		return
	}

	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		s.logger.Warn("failed to load book for rating refresh", "book_id", bookID, "error", err)
		return
	}

	book.AverageRating = &avg
	if err := s.bookRepo.Update(ctx, bookID, book); err != nil {
		s.logger.Warn("failed to store average rating", "book_id", bookID, "error", err)
	}
}
