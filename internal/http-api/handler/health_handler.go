package handler

import (
	"net/http"

	"bookworm/internal/cache"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewHealthHandler(db *gorm.DB, cache *cache.Cache) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
}

// Health reports database and cache reachability. The cache being down
// degrades the response but not the status code; the API still works.
func (h *HealthHandler) Health(c *gin.Context) {
	dbStatus := "ok"
	status := http.StatusOK

	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		dbStatus = "unreachable"
		status = http.StatusServiceUnavailable
	}

	cacheStatus := "ok"
	if err := h.cache.Ping(c.Request.Context()); err != nil {
		cacheStatus = "unreachable"
	}

	c.JSON(status, gin.H{
		"database": dbStatus,
		"cache":    cacheStatus,
	})
}
