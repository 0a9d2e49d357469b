package dto

import (
	"time"

	"bookworm/internal/http-api/models"
)

// CreateBookDTO used for POST /api/books
type CreateBookDTO struct {
	Title       string  `json:"title" binding:"required"`
	Author      *string `json:"author,omitempty"`
	Description *string `json:"description,omitempty"`
	Pages       int     `json:"pages" binding:"omitempty,min=0"`
	CoverURL    *string `json:"cover_url,omitempty"`
	GenreIDs    []int64 `json:"genre_ids,omitempty"`
}

// UpdateBookDTO used for PUT /api/books/:id (partial updates allowed)
type UpdateBookDTO struct {
	Title       *string `json:"title,omitempty"`
	Author      *string `json:"author,omitempty"`
	Description *string `json:"description,omitempty"`
	Pages       *int    `json:"pages,omitempty"`
	CoverURL    *string `json:"cover_url,omitempty"`
	GenreIDs    []int64 `json:"genre_ids,omitempty"`
}

// BookResponse DTO for responses
type BookResponse struct {
	ID            int64          `json:"id"`
	Title         string         `json:"title"`
	Author        *string        `json:"author,omitempty"`
	Description   *string        `json:"description,omitempty"`
	Pages         int            `json:"pages"`
	CoverURL      *string        `json:"cover_url,omitempty"`
	AverageRating *float64       `json:"average_rating,omitempty"`
	Genres        []models.Genre `json:"genres,omitempty"`
	CreatedAt     *time.Time     `json:"created_at,omitempty"`
}

// Converters
func (d CreateBookDTO) ToModel() models.Book {
	return models.Book{
		Title:       d.Title,
		Author:      d.Author,
		Description: d.Description,
		Pages:       d.Pages,
		CoverURL:    d.CoverURL,
	}
}

func (d UpdateBookDTO) ApplyTo(b *models.Book) {
	if d.Title != nil {
		b.Title = *d.Title
	}
	if d.Author != nil {
		b.Author = d.Author
	}
	if d.Description != nil {
		b.Description = d.Description
	}
	if d.Pages != nil {
		b.Pages = *d.Pages
	}
	if d.CoverURL != nil {
		b.CoverURL = d.CoverURL
	}
}

func FromModelToBookResponse(b models.Book) BookResponse {
	return BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		Description:   b.Description,
		Pages:         b.Pages,
		CoverURL:      b.CoverURL,
		AverageRating: b.AverageRating,
		Genres:        b.Genres,
		CreatedAt:     b.CreatedAt,
	}
}

// PaginatedBooksResponse for the catalog listing
type PaginatedBooksResponse struct {
	Data       []BookResponse `json:"data"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	Total      int            `json:"total"`
	TotalPages int            `json:"total_pages"`
}

func NewPaginatedBooksResponse(data []BookResponse, total, page, pageSize int) *PaginatedBooksResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &PaginatedBooksResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
