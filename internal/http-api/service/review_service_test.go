package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"bookworm/internal/http-api/models"
)

// MockReviewRepository mocks the ReviewRepository interface
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, userID string, bookID int64) error {
	args := m.Called(ctx, userID, bookID)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByUserAndBook(ctx context.Context, userID string, bookID int64) (*models.Review, error) {
	args := m.Called(ctx, userID, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByBook(ctx context.Context, bookID int64, page, pageSize int) ([]models.Review, int64, error) {
	args := m.Called(ctx, bookID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Review), args.Get(1).(int64), args.Error(2)
}

func (m *MockReviewRepository) AverageRating(ctx context.Context, bookID int64) (float64, error) {
	args := m.Called(ctx, bookID)
	return args.Get(0).(float64), args.Error(1)
}

func TestReviewCreate_NewReview(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockBooks := new(MockBookRepository)
	svc := NewReviewService(mockReviews, mockBooks, slog.Default())

	book := &models.Book{ID: 7, Title: "Dune"}
	mockBooks.On("GetByID", mock.Anything, int64(7)).Return(book, nil)
	mockReviews.On("GetByUserAndBook", mock.Anything, "user-1", int64(7)).
		Return(nil, gorm.ErrRecordNotFound).Once()
	mockReviews.On("Create", mock.Anything, mock.AnythingOfType("*models.Review")).Return(nil)
	mockReviews.On("GetByUserAndBook", mock.Anything, "user-1", int64(7)).
		Return(&models.Review{
			UserID: "user-1", BookID: 7, Rating: 4, Comment: "gripping",
			User: models.User{Username: "reader"},
		}, nil)
	mockReviews.On("AverageRating", mock.Anything, int64(7)).Return(4.0, nil)
	mockBooks.On("Update", mock.Anything, int64(7), mock.AnythingOfType("*models.Book")).Return(nil)

	resp, err := svc.CreateOrUpdate(context.Background(), "user-1", 7, 4, "gripping")

	assert.NoError(t, err)
	assert.Equal(t, "reader", resp.Username)
	assert.Equal(t, 4, resp.Rating)
	mockReviews.AssertExpectations(t)
}

func TestReviewCreate_UpdatesExisting(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockBooks := new(MockBookRepository)
	svc := NewReviewService(mockReviews, mockBooks, slog.Default())

	book := &models.Book{ID: 7}
	mockBooks.On("GetByID", mock.Anything, int64(7)).Return(book, nil)
	existing := &models.Review{
		ID: 3, UserID: "user-1", BookID: 7, Rating: 2, Comment: "meh",
		User: models.User{Username: "reader"},
	}
	mockReviews.On("GetByUserAndBook", mock.Anything, "user-1", int64(7)).Return(existing, nil)
	mockReviews.On("Update", mock.Anything, existing).Return(nil)
	mockReviews.On("AverageRating", mock.Anything, int64(7)).Return(5.0, nil)
	mockBooks.On("Update", mock.Anything, int64(7), mock.AnythingOfType("*models.Book")).Return(nil)

	resp, err := svc.CreateOrUpdate(context.Background(), "user-1", 7, 5, "grew on me")

	assert.NoError(t, err)
	assert.Equal(t, 5, resp.Rating)
	assert.Equal(t, "grew on me", resp.Comment)
	mockReviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewCreate_BookMissing(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockBooks := new(MockBookRepository)
	svc := NewReviewService(mockReviews, mockBooks, slog.Default())

	mockBooks.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := svc.CreateOrUpdate(context.Background(), "user-1", 99, 4, "")

	assert.Equal(t, ErrBookNotFound, err)
	assert.Nil(t, resp)
	mockReviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewCreate_RatingRefreshFailureIsSwallowed(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockBooks := new(MockBookRepository)
	svc := NewReviewService(mockReviews, mockBooks, slog.Default())

	book := &models.Book{ID: 7}
	mockBooks.On("GetByID", mock.Anything, int64(7)).Return(book, nil)
	existing := &models.Review{UserID: "user-1", BookID: 7, Rating: 3}
	mockReviews.On("GetByUserAndBook", mock.Anything, "user-1", int64(7)).Return(existing, nil)
	mockReviews.On("Update", mock.Anything, existing).Return(nil)
	mockReviews.On("AverageRating", mock.Anything, int64(7)).Return(0.0, assert.AnError)

	resp, err := svc.CreateOrUpdate(context.Background(), "user-1", 7, 3, "")

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	mockBooks.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewDelete_NotFound(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockBooks := new(MockBookRepository)
	svc := NewReviewService(mockReviews, mockBooks, slog.Default())

	mockReviews.On("Delete", mock.Anything, "user-1", int64(7)).Return(gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), "user-1", 7)

	assert.Equal(t, ErrReviewNotFound, err)
}

func TestReviewGetBookReviews_Paginates(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockBooks := new(MockBookRepository)
	svc := NewReviewService(mockReviews, mockBooks, slog.Default())

	mockBooks.On("GetByID", mock.Anything, int64(7)).Return(&models.Book{ID: 7}, nil)
	reviews := []models.Review{
		{Rating: 5, User: models.User{Username: "alice"}},
		{Rating: 3, User: models.User{Username: "bob"}},
	}
	mockReviews.On("GetByBook", mock.Anything, int64(7), 1, 20).Return(reviews, int64(42), nil)

	resp, err := svc.GetBookReviews(context.Background(), 7, 1, 20)

	assert.NoError(t, err)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 42, resp.Total)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, "alice", resp.Data[0].Username)
}
