package service

import (
	"context"
	"errors"

	"bookworm/internal/http-api/dto"
	"bookworm/internal/http-api/models"
	"bookworm/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrVideoNotFound = errors.New("video not found")

type VideoService interface {
	GetAll(ctx context.Context) ([]models.Video, error)
	Create(ctx context.Context, d dto.CreateVideoDTO) (*models.Video, error)
	Update(ctx context.Context, id int64, d dto.UpdateVideoDTO) (*models.Video, error)
	Delete(ctx context.Context, id int64) error
}

type videoService struct {
	repo repository.VideoRepository
}

func NewVideoService(repo repository.VideoRepository) VideoService {
	return &videoService{repo: repo}
}

func (s *videoService) GetAll(ctx context.Context) ([]models.Video, error) {
	return s.repo.GetAll(ctx)
}

func (s *videoService) Create(ctx context.Context, d dto.CreateVideoDTO) (*models.Video, error) {
	video := d.ToModel()
	if err := s.repo.Create(ctx, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

func (s *videoService) Update(ctx context.Context, id int64, d dto.UpdateVideoDTO) (*models.Video, error) {
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	d.ApplyTo(video)
	if err := s.repo.Update(ctx, id, video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *videoService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
