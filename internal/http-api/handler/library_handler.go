package handler

import (
	"context"
	"net/http"
	"time"

	"bookworm/internal/http-api/dto"
	"bookworm/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type LibraryHandler struct {
	svc service.LibraryService
}

func NewLibraryHandler(svc service.LibraryService) *LibraryHandler {
	return &LibraryHandler{svc: svc}
}

// RegisterRoutes registers the shelf routes; rg must already carry the auth
// middleware.
func (h *LibraryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PATCH("", h.Update)
	rg.GET("", h.List)
}

// Update sets a book's shelf status and/or page position for the acting user.
func (h *LibraryHandler) Update(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.UpdateLibraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	record, err := h.svc.Update(ctx, userID.(string), req)
	if err != nil {
		switch err {
		case service.ErrInvalidStatus:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case service.ErrBookNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToLibraryResponse(*record))
}

// List returns the acting user's shelf partitioned by status.
func (h *LibraryHandler) List(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	library, err := h.svc.List(ctx, userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := dto.CategorizedLibraryResponse{
		CurrentlyReading: make([]dto.LibraryRecordResponse, 0, len(library.CurrentlyReading)),
		WantToRead:       make([]dto.LibraryRecordResponse, 0, len(library.WantToRead)),
		Read:             make([]dto.LibraryRecordResponse, 0, len(library.Read)),
	}
	for _, rec := range library.CurrentlyReading {
		resp.CurrentlyReading = append(resp.CurrentlyReading, dto.FromModelToLibraryResponse(rec))
	}
	for _, rec := range library.WantToRead {
		resp.WantToRead = append(resp.WantToRead, dto.FromModelToLibraryResponse(rec))
	}
	for _, rec := range library.Read {
		resp.Read = append(resp.Read, dto.FromModelToLibraryResponse(rec))
	}

	c.JSON(http.StatusOK, resp)
}
