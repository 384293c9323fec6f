package repository

import (
	"context"
	"fmt"

	"webtoonhub/internal/microservices/http-api/models"
	"webtoonhub/internal/shared"

	"gorm.io/gorm"
)

type RankingRepository interface {
	TopByPeriod(ctx context.Context, period shared.Period, genre string, limit int) ([]models.Webtoon, error)
}

type rankingRepository struct {
	db *gorm.DB
}

func NewRankingRepository(db *gorm.DB) RankingRepository {
	return &rankingRepository{db: db}
}

// TopByPeriod orders webtoons by the period's precomputed counter, falling
// back to cumulative views when the counter has never been filled.
func (r *rankingRepository) TopByPeriod(ctx context.Context, period shared.Period, genre string, limit int) ([]models.Webtoon, error) {
	if _, ok := shared.ParsePeriod(string(period)); !ok {
		return nil, shared.Validation("invalid period")
	}

	var list []models.Webtoon
	q := r.db.WithContext(ctx).Model(&models.Webtoon{}).Where("discontinued = ?", false)
	if genre != "" {
		q = q.Where("genre = ?", genre)
	}
	// column name comes from the closed Period set, never from user input
	order := fmt.Sprintf("COALESCE(%s, views, 0) DESC, id ASC", period.Column())
	if err := q.Order(order).Limit(limit).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("ranking %s: %w", period, err)
	}
	return list, nil
}
