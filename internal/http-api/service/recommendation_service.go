package service

import (
	"context"
	"log/slog"
	"sort"

	"bookworm/internal/cache"
	"bookworm/internal/http-api/models"
	"bookworm/internal/http-api/repository"
)

const (
	// how many of the user's favourite genres feed the suggestion query
	topGenreCount = 3
)

func recommendCacheKey(userID string) string {
	return "recommend:user:" + userID
}

type RecommendationService interface {
	// Recommend suggests up to limit catalog books the user has not shelved,
	// preferring the genres they shelve most, topped up with the highest
	// rated remainder.
	Recommend(ctx context.Context, userID string, limit int) ([]models.Book, error)
}

type recommendationService struct {
	libraryRepo repository.LibraryRepository
	bookRepo    repository.BookRepository
	cache       *cache.Cache
	logger      *slog.Logger
}

func NewRecommendationService(
	libraryRepo repository.LibraryRepository,
	bookRepo repository.BookRepository,
	cache *cache.Cache,
	logger *slog.Logger,
) RecommendationService {
	return &recommendationService{
		libraryRepo: libraryRepo,
		bookRepo:    bookRepo,
		cache:       cache,
		logger:      logger,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, userID string, limit int) ([]models.Book, error) {
	key := recommendCacheKey(userID)

	var cached []models.Book
	ok, err := s.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		s.logger.Warn("recommendation cache read failed", "user_id", userID, "error", err)
	}
	if ok {
		return cached, nil
	}

	records, err := s.libraryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	genreCounts := make(map[int64]int)
	shelved := make([]int64, 0, len(records))
	for _, rec := range records {
		shelved = append(shelved, rec.BookID)
		if rec.Book == nil {
			continue
		}
		for _, g := range rec.Book.Genres {
			genreCounts[g.ID]++
		}
	}

	books, err := s.bookRepo.ListByGenres(ctx, topGenres(genreCounts, topGenreCount), shelved, limit)
	if err != nil {
		return nil, err
	}

	// Top up from the overall catalog when genre matches run short (new users
	// with an empty shelf land here directly).
	if len(books) < limit {
		exclude := make([]int64, 0, len(shelved)+len(books))
		exclude = append(exclude, shelved...)
		for _, b := range books {
			exclude = append(exclude, b.ID)
		}
		fill, err := s.bookRepo.ListTopRated(ctx, exclude, limit-len(books))
		if err != nil {
			return nil, err
		}
		books = append(books, fill...)
	}

	if err := s.cache.SetJSON(ctx, key, books); err != nil {
		s.logger.Warn("recommendation cache write failed", "user_id", userID, "error", err)
	}

	return books, nil
}

// topGenres returns the n most frequent genre IDs, most frequent first.
// Ties break on the lower ID so the result is stable.
func topGenres(counts map[int64]int, n int) []int64 {
	ids := make([]int64, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return ids[i] < ids[j]
	})
	if len(ids) > n {
		ids = ids[:n]
	}
	return ids
}
