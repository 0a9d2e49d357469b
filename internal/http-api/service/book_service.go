package service

import (
	"context"
	"errors"
	"strings"

	"bookworm/internal/http-api/dto"
	"bookworm/internal/http-api/models"
	"bookworm/internal/http-api/repository"

	"gorm.io/gorm"
)

type BookService interface {
	GetAll(ctx context.Context, page, pageSize int) ([]models.Book, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	Search(ctx context.Context, query string) ([]models.Book, error)
	Create(ctx context.Context, d dto.CreateBookDTO) (*models.Book, error)
	Update(ctx context.Context, id int64, d dto.UpdateBookDTO) (*models.Book, error)
	Delete(ctx context.Context, id int64) error
}

type bookService struct {
	repo repository.BookRepository
}

func NewBookService(repo repository.BookRepository) BookService {
	return &bookService{repo: repo}
}

func (s *bookService) GetAll(ctx context.Context, page, pageSize int) ([]models.Book, int64, error) {
	return s.repo.GetAll(ctx, page, pageSize)
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}

func (s *bookService) Search(ctx context.Context, query string) ([]models.Book, error) {
	return s.repo.Search(ctx, strings.TrimSpace(query))
}

func (s *bookService) Create(ctx context.Context, d dto.CreateBookDTO) (*models.Book, error) {
	book := d.ToModel()
	if err := s.repo.Create(ctx, &book); err != nil {
		return nil, err
	}
	if len(d.GenreIDs) > 0 {
		if err := s.repo.ReplaceGenres(ctx, book.ID, d.GenreIDs); err != nil {
			return nil, err
		}
	}
	return s.repo.GetByID(ctx, book.ID)
}

func (s *bookService) Update(ctx context.Context, id int64, d dto.UpdateBookDTO) (*models.Book, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	d.ApplyTo(book)
	if err := s.repo.Update(ctx, id, book); err != nil {
		return nil, err
	}
	if d.GenreIDs != nil {
		if err := s.repo.ReplaceGenres(ctx, id, d.GenreIDs); err != nil {
			return nil, err
		}
	}
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
