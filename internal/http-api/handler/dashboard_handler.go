package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"bookworm/internal/http-api/dto"
	"bookworm/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

const defaultRecommendationLimit = 10

type DashboardHandler struct {
	dashboardService service.DashboardService
	recommendService service.RecommendationService
}

func NewDashboardHandler(dashboardService service.DashboardService, recommendService service.RecommendationService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		recommendService: recommendService,
	}
}

// RegisterRoutes registers the read-side routes; rg must already carry the
// auth middleware.
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Stats)
	rg.GET("/recommendations", h.Recommendations)
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	stats, err := h.dashboardService.Stats(ctx, userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) Recommendations(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultRecommendationLimit)))
	if limit < 1 || limit > maxPageSize {
		limit = defaultRecommendationLimit
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	books, err := h.recommendService.Recommend(ctx, userID.(string), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]dto.BookResponse, 0, len(books))
	for _, b := range books {
		items = append(items, dto.FromModelToBookResponse(b))
	}

	c.JSON(http.StatusOK, dto.RecommendationsResponse{Books: items})
}
