package repository

import (
	"context"
	"fmt"
	"time"

	"webtoonhub/internal/microservices/http-api/models"
	"webtoonhub/internal/shared"

	"gorm.io/gorm"
)

// WindowCounters are the recomputed ranking counters for one webtoon.
type WindowCounters map[shared.Period]int64

type ViewStatRepository interface {
	WebtoonIDs(ctx context.Context) ([]int64, error)
	SumWindows(ctx context.Context, webtoonID int64, day time.Time) (WindowCounters, error)
	SaveCounters(ctx context.Context, webtoonID int64, counters WindowCounters) error
}

type viewStatRepository struct {
	db *gorm.DB
}

func NewViewStatRepository(db *gorm.DB) ViewStatRepository {
	return &viewStatRepository{db: db}
}

func (r *viewStatRepository) WebtoonIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).Model(&models.Webtoon{}).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("list webtoon ids: %w", err)
	}
	return ids, nil
}

// SumWindows sums the daily stat rows for every period ending on day, in one query.
func (r *viewStatRepository) SumWindows(ctx context.Context, webtoonID int64, day time.Time) (WindowCounters, error) {
	var row struct {
		Daily   int64
		Weekly  int64
		Monthly int64
		Yearly  int64
	}
	end := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	err := r.db.WithContext(ctx).Model(&models.WebtoonViewStat{}).
		Select(`COALESCE(SUM(CASE WHEN stat_date >= ? THEN views END), 0) AS daily,
			COALESCE(SUM(CASE WHEN stat_date >= ? THEN views END), 0) AS weekly,
			COALESCE(SUM(CASE WHEN stat_date >= ? THEN views END), 0) AS monthly,
			COALESCE(SUM(views), 0) AS yearly`,
			shared.PeriodDaily.WindowStart(end),
			shared.PeriodWeekly.WindowStart(end),
			shared.PeriodMonthly.WindowStart(end),
		).
		Where("webtoon_id = ? AND stat_date >= ? AND stat_date <= ?", webtoonID, shared.PeriodYearly.WindowStart(end), end).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("sum view stats for webtoon %d: %w", webtoonID, err)
	}

	return WindowCounters{
		shared.PeriodDaily:   row.Daily,
		shared.PeriodWeekly:  row.Weekly,
		shared.PeriodMonthly: row.Monthly,
		shared.PeriodYearly:  row.Yearly,
	}, nil
}

func (r *viewStatRepository) SaveCounters(ctx context.Context, webtoonID int64, counters WindowCounters) error {
	updates := make(map[string]any, len(counters))
	for period, v := range counters {
		updates[period.Column()] = v
	}
	err := r.db.WithContext(ctx).Model(&models.Webtoon{}).
		Where("id = ?", webtoonID).
		UpdateColumns(updates).Error
	if err != nil {
		return fmt.Errorf("save counters for webtoon %d: %w", webtoonID, err)
	}
	return nil
}
