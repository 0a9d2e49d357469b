package service

import (
	"context"
	"errors"

	"bookworm/internal/http-api/models"
	"bookworm/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// UserService backs the admin user management screens.
type UserService interface {
	List(ctx context.Context, page, pageSize int) ([]models.User, int64, error)
	UpdateRole(ctx context.Context, userID, role string) (*models.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) List(ctx context.Context, page, pageSize int) ([]models.User, int64, error) {
	return s.repo.List(ctx, page, pageSize)
}

func (s *userService) UpdateRole(ctx context.Context, userID, role string) (*models.User, error) {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Role = role
	if err := s.repo.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}
