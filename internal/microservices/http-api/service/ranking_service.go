package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"webtoonhub/internal/microservices/http-api/dto"
	"webtoonhub/internal/microservices/http-api/models"
	"webtoonhub/internal/microservices/http-api/repository"
	"webtoonhub/internal/shared"
)

const (
	DefaultRankingLimit = 20
	MaxRankingLimit     = 100
)

type RankingService interface {
	// Ranking never fails on storage errors: it logs and returns an empty list.
	// Only an unknown period is reported, as a validation error.
	Ranking(ctx context.Context, period string, genre string, limit int) ([]dto.RankedItem, error)
}

// RankingInvalidator drops cached ranking pages after catalog changes
type RankingInvalidator interface {
	Invalidate(ctx context.Context) (int, error)
}

type rankingService struct {
	repo   repository.RankingRepository
	cache  *repository.RankingCache
	logger *slog.Logger
}

func NewRankingService(repo repository.RankingRepository, cache *repository.RankingCache) RankingService {
	return &rankingService{repo: repo, cache: cache, logger: slog.Default()}
}

func (s *rankingService) Ranking(ctx context.Context, rawPeriod string, genre string, limit int) ([]dto.RankedItem, error) {
	period, ok := shared.ParsePeriod(rawPeriod)
	if !ok {
		return nil, shared.Validation("period must be one of: daily, weekly, monthly, yearly")
	}
	genre = normalizeGenre(genre)
	if limit < 1 || limit > MaxRankingLimit {
		limit = DefaultRankingLimit
	}

	key := repository.RankingKey(string(period), genre, limit)
	var cached []dto.RankedItem
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.logger.Warn("ranking_cache_get_failed", "key", key, "error", err)
	}
	if hit {
		return cached, nil
	}

	list, err := s.repo.TopByPeriod(ctx, period, genre, limit)
	if err != nil {
		s.logger.Error("ranking_lookup_failed", "period", period, "genre", genre, "error", err)
		return []dto.RankedItem{}, nil
	}

	items := RankItems(list, period)
	if err := s.cache.Set(ctx, key, items); err != nil {
		s.logger.Warn("ranking_cache_set_failed", "key", key, "error", err)
	}
	return items, nil
}

// normalizeGenre maps "", "all" (any case) to the unfiltered ranking.
func normalizeGenre(genre string) string {
	genre = strings.TrimSpace(genre)
	if strings.EqualFold(genre, "all") {
		return ""
	}
	return genre
}

// RankItems converts webtoons into ranked rows: sorted by the period metric
// descending (stable on input order), rank = 1 + position.
func RankItems(list []models.Webtoon, period shared.Period) []dto.RankedItem {
	items := make([]dto.RankedItem, 0, len(list))
	for i := range list {
		w := &list[i]
		thumb := dto.PlaceholderThumbnail
		if w.Thumbnail != nil && strings.TrimSpace(*w.Thumbnail) != "" {
			thumb = *w.Thumbnail
		}
		items = append(items, dto.RankedItem{
			ID:        w.ID,
			Name:      w.Name,
			Genre:     w.Genre,
			Thumbnail: thumb,
			Views:     periodViews(w, period),
		})
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Views > items[j].Views })
	for i := range items {
		items[i].Rank = i + 1
	}
	return items
}

// periodViews picks the period counter, falling back to cumulative views.
func periodViews(w *models.Webtoon, period shared.Period) int64 {
	var metric *int64
	switch period {
	case shared.PeriodDaily:
		metric = w.DailyViews
	case shared.PeriodWeekly:
		metric = w.WeeklyViews
	case shared.PeriodMonthly:
		metric = w.MonthlyViews
	case shared.PeriodYearly:
		metric = w.YearlyViews
	}
	if metric != nil {
		return *metric
	}
	return w.Views
}
