package handler

import (
	"context"
	"net/http"
	"time"

	"bookworm/internal/http-api/dto"
	"bookworm/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the admin user management endpoints.
type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// RegisterRoutes registers the user admin routes; admin must carry the admin
// guard.
func (h *UserHandler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/users", h.List)
	admin.PATCH("/users/:id/role", h.UpdateRole)
}

func (h *UserHandler) List(c *gin.Context) {
	page, pageSize := pagination(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	users, total, err := h.svc.List(ctx, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.FromModelToUserResponse(&users[i]))
	}

	c.JSON(http.StatusOK, dto.NewPaginatedUsersResponse(items, int(total), page, pageSize))
}

func (h *UserHandler) UpdateRole(c *gin.Context) {
	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.svc.UpdateRole(ctx, c.Param("id"), req.Role)
	if err != nil {
		if err == service.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToUserResponse(user))
}
