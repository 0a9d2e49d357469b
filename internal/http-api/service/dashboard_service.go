package service

import (
	"context"
	"log/slog"

	"bookworm/internal/cache"
	"bookworm/internal/http-api/dto"
	"bookworm/internal/http-api/models"
	"bookworm/internal/http-api/repository"
)

const recentlyUpdatedLimit = 5

func dashboardCacheKey(userID string) string {
	return "dashboard:user:" + userID
}

type DashboardService interface {
	Stats(ctx context.Context, userID string) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	libraryRepo repository.LibraryRepository
	userRepo    repository.UserRepository
	cache       *cache.Cache
	logger      *slog.Logger
}

func NewDashboardService(
	libraryRepo repository.LibraryRepository,
	userRepo repository.UserRepository,
	cache *cache.Cache,
	logger *slog.Logger,
) DashboardService {
	return &dashboardService{
		libraryRepo: libraryRepo,
		userRepo:    userRepo,
		cache:       cache,
		logger:      logger,
	}
}

func (s *dashboardService) Stats(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	key := dashboardCacheKey(userID)

	var cached dto.DashboardResponse
	ok, err := s.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		// cache trouble is not a reason to fail the dashboard
		s.logger.Warn("dashboard cache read failed", "user_id", userID, "error", err)
	}
	if ok {
		return &cached, nil
	}

	records, err := s.libraryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{}
	for i, rec := range records {
		switch rec.Status {
		case models.StatusWantToRead:
			resp.WantToRead++
		case models.StatusCurrentlyReading:
			resp.CurrentlyReading++
		case models.StatusRead:
			resp.Read++
		}
		resp.PagesRead += rec.CurrentPage
		if i < recentlyUpdatedLimit {
			resp.RecentlyUpdated = append(resp.RecentlyUpdated, dto.FromModelToLibraryResponse(rec))
		}
	}

	if user, err := s.userRepo.FindByID(userID); err == nil {
		resp.CurrentStreak = user.CurrentStreak
		resp.LastReadingDate = user.LastReadingDate
	}

	if err := s.cache.SetJSON(ctx, key, resp); err != nil {
		s.logger.Warn("dashboard cache write failed", "user_id", userID, "error", err)
	}

	return resp, nil
}
