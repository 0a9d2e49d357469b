package dto

import (
	"time"

	"bookworm/internal/http-api/models"
)

// UpdateLibraryRequest: payload to set a book's shelf status and/or page
// position. Status and CurrentPage are both optional; TotalPages is a client
// fallback used only when the catalog row has no page count.
type UpdateLibraryRequest struct {
	BookID      int64   `json:"book_id" binding:"required,gt=0"`
	Status      *string `json:"status,omitempty"`
	CurrentPage *int    `json:"current_page,omitempty"`
	TotalPages  *int    `json:"total_pages,omitempty"`
}

// LibraryRecordResponse: one shelf entry with its book populated
type LibraryRecordResponse struct {
	ID          int64        `json:"id"`
	BookID      int64        `json:"book_id"`
	Status      string       `json:"status"`
	CurrentPage int          `json:"current_page"`
	Progress    int          `json:"progress"`
	Book        BookResponse `json:"book,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// CategorizedLibraryResponse: the user's shelf partitioned by status
type CategorizedLibraryResponse struct {
	CurrentlyReading []LibraryRecordResponse `json:"currently_reading"`
	WantToRead       []LibraryRecordResponse `json:"want_to_read"`
	Read             []LibraryRecordResponse `json:"read"`
}

func FromModelToLibraryResponse(rec models.LibraryRecord) LibraryRecordResponse {
	resp := LibraryRecordResponse{
		ID:          rec.ID,
		BookID:      rec.BookID,
		Status:      rec.Status,
		CurrentPage: rec.CurrentPage,
		Progress:    rec.Progress,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
	if rec.Book != nil {
		resp.Book = FromModelToBookResponse(*rec.Book)
	}
	return resp
}
