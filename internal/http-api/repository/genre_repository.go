package repository

import (
	"context"

	"bookworm/internal/http-api/models"

	"gorm.io/gorm"
)

type GenreRepository interface {
	GetAll(ctx context.Context) ([]models.Genre, error)
	Create(ctx context.Context, g *models.Genre) error
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) GetAll(ctx context.Context) ([]models.Genre, error) {
	var list []models.Genre
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *genreRepository) Create(ctx context.Context, g *models.Genre) error {
	return r.db.WithContext(ctx).Create(g).Error
}
