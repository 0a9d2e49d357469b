package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bookworm/internal/cache"
	"bookworm/internal/http-api/dto"
	"bookworm/internal/http-api/models"
	"bookworm/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrBookNotFound  = errors.New("book not found")
	ErrInvalidStatus = errors.New("invalid reading status")
)

// CategorizedLibrary is a user's shelf partitioned by status. Each slice keeps
// the most-recently-updated-first order of the underlying listing.
type CategorizedLibrary struct {
	CurrentlyReading []models.LibraryRecord
	WantToRead       []models.LibraryRecord
	Read             []models.LibraryRecord
}

type LibraryService interface {
	// Update upserts the (user, book) shelf record from the request and bumps
	// the user's reading streak as a side effect.
	Update(ctx context.Context, userID string, req dto.UpdateLibraryRequest) (*models.LibraryRecord, error)
	List(ctx context.Context, userID string) (*CategorizedLibrary, error)
}

type libraryService struct {
	repo     repository.LibraryRepository
	bookRepo repository.BookRepository
	userRepo repository.UserRepository
	cache    *cache.Cache
	logger   *slog.Logger
	now      func() time.Time
}

func NewLibraryService(
	repo repository.LibraryRepository,
	bookRepo repository.BookRepository,
	userRepo repository.UserRepository,
	cache *cache.Cache,
	logger *slog.Logger,
) LibraryService {
	return &libraryService{
		repo:     repo,
		bookRepo: bookRepo,
		userRepo: userRepo,
		cache:    cache,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *libraryService) Update(ctx context.Context, userID string, req dto.UpdateLibraryRequest) (*models.LibraryRecord, error) {
	if req.Status != nil && !models.ValidStatus(*req.Status) {
		return nil, ErrInvalidStatus
	}

	// The catalog is the source of truth for the page total; the client's
	// total_pages only fills in when the catalog row carries none.
	book, err := s.bookRepo.GetByID(ctx, req.BookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	totalPages := book.Pages
	if totalPages <= 0 && req.TotalPages != nil {
		totalPages = *req.TotalPages
	}

	rec, err := s.repo.GetByUserAndBook(ctx, userID, req.BookID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		rec = &models.LibraryRecord{
			UserID: userID,
			BookID: req.BookID,
			Status: models.StatusWantToRead,
		}
	}

	if req.CurrentPage != nil {
		page := *req.CurrentPage
		if page < 0 {
			page = 0
		}
		if totalPages > 0 && page > totalPages {
			page = totalPages
		}
		rec.CurrentPage = page
		rec.Progress = models.ComputeProgress(page, totalPages)
	}

	// Status-driven defaults run after the explicit page so a stale client
	// page count can never leave a Read record below 100% or a Want-to-Read
	// record above zero.
	if req.Status != nil {
		rec.Status = *req.Status
		switch *req.Status {
		case models.StatusWantToRead:
			rec.CurrentPage = 0
			rec.Progress = 0
		case models.StatusRead:
			if req.CurrentPage == nil {
				rec.CurrentPage = totalPages
			}
			rec.Progress = 100
		}
	} else if rec.Status == models.StatusWantToRead && rec.CurrentPage > 0 {
		// A page-only write means the user is reading; a Want-to-Read record
		// must never carry progress.
		rec.Status = models.StatusCurrentlyReading
	}

	s.bumpStreak(ctx, userID)

	if err := s.repo.Upsert(ctx, rec); err != nil {
		return nil, err
	}

	s.invalidate(ctx, userID)

	// Reload so the caller gets the stored timestamps and the book populated.
	return s.repo.GetByUserAndBook(ctx, userID, req.BookID)
}

func (s *libraryService) List(ctx context.Context, userID string) (*CategorizedLibrary, error) {
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	lib := &CategorizedLibrary{}
	for _, rec := range records {
		switch rec.Status {
		case models.StatusCurrentlyReading:
			lib.CurrentlyReading = append(lib.CurrentlyReading, rec)
		case models.StatusWantToRead:
			lib.WantToRead = append(lib.WantToRead, rec)
		case models.StatusRead:
			lib.Read = append(lib.Read, rec)
		}
	}
	return lib, nil
}

// bumpStreak advances the user's daily reading streak. Streaks are best-effort
// telemetry: a missing user or failed write must not fail the shelf update.
func (s *libraryService) bumpStreak(ctx context.Context, userID string) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		s.logger.Debug("streak update skipped", "user_id", userID, "error", err)
		return
	}

	streak, date, changed := NextStreak(user.CurrentStreak, user.LastReadingDate, s.now())
	if !changed {
		return
	}

	user.CurrentStreak = streak
	user.LastReadingDate = date
	if err := s.userRepo.Save(user); err != nil {
		s.logger.Warn("failed to persist streak", "user_id", userID, "error", err)
	}
}

// invalidate drops the user's cached dashboard and recommendations after a
// shelf write.
func (s *libraryService) invalidate(ctx context.Context, userID string) {
	if err := s.cache.Delete(ctx, dashboardCacheKey(userID), recommendCacheKey(userID)); err != nil {
		s.logger.Warn("cache invalidation failed", "user_id", userID, "error", err)
	}
}
