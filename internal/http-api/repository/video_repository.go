package repository

import (
	"context"
	"fmt"

	"bookworm/internal/http-api/models"

	"gorm.io/gorm"
)

type VideoRepository interface {
	GetAll(ctx context.Context) ([]models.Video, error)
	GetByID(ctx context.Context, id int64) (*models.Video, error)
	Create(ctx context.Context, v *models.Video) error
	Update(ctx context.Context, id int64, v *models.Video) error
	Delete(ctx context.Context, id int64) error
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) GetAll(ctx context.Context) ([]models.Video, error) {
	var list []models.Video
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *videoRepository) GetByID(ctx context.Context, id int64) (*models.Video, error) {
	var v models.Video
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *videoRepository) Create(ctx context.Context, v *models.Video) error {
	if err := r.db.WithContext(ctx).Create(v).Error; err != nil {
		return fmt.Errorf("create video: %w", err)
	}
	return nil
}

func (r *videoRepository) Update(ctx context.Context, id int64, v *models.Video) error {
	v.ID = id
	if err := r.db.WithContext(ctx).Save(v).Error; err != nil {
		return fmt.Errorf("update video: %w", err)
	}
	return nil
}

func (r *videoRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Video{}, id).Error; err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	return nil
}
