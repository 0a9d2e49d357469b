package dto

import (
	"time"

	"bookworm/internal/http-api/models"
)

// CreateVideoDTO used for POST /api/videos
type CreateVideoDTO struct {
	Title       string  `json:"title" binding:"required"`
	URL         string  `json:"url" binding:"required,url"`
	Description *string `json:"description,omitempty"`
}

// UpdateVideoDTO used for PUT /api/videos/:id (partial updates allowed)
type UpdateVideoDTO struct {
	Title       *string `json:"title,omitempty"`
	URL         *string `json:"url,omitempty" binding:"omitempty,url"`
	Description *string `json:"description,omitempty"`
}

// VideoResponse DTO for responses
type VideoResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (d CreateVideoDTO) ToModel() models.Video {
	return models.Video{
		Title:       d.Title,
		URL:         d.URL,
		Description: d.Description,
	}
}

func (d UpdateVideoDTO) ApplyTo(v *models.Video) {
	if d.Title != nil {
		v.Title = *d.Title
	}
	if d.URL != nil {
		v.URL = *d.URL
	}
	if d.Description != nil {
		v.Description = d.Description
	}
}

func FromModelToVideoResponse(v models.Video) VideoResponse {
	return VideoResponse{
		ID:          v.ID,
		Title:       v.Title,
		URL:         v.URL,
		Description: v.Description,
		CreatedAt:   v.CreatedAt,
	}
}
