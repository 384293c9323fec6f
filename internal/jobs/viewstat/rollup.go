// Package viewstat recomputes the windowed view counters on webtoons from
// the per-day WebtoonViewStat rows.
package viewstat

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"webtoonhub/internal/microservices/http-api/repository"
)

// CacheInvalidator drops cached rankings once counters change
type CacheInvalidator interface {
	Invalidate(ctx context.Context) (int, error)
}

type Result struct {
	Webtoons    int
	Failed      int64
	Invalidated int
	Duration    time.Duration
}

type Rollup struct {
	repo    repository.ViewStatRepository
	cache   CacheInvalidator
	workers int
	logger  *slog.Logger
	now     func() time.Time
}

func NewRollup(repo repository.ViewStatRepository, cache CacheInvalidator, workers int, logger *slog.Logger) *Rollup {
	if logger == nil {
		logger = slog.Default()
	}
	return &Rollup{repo: repo, cache: cache, workers: workers, logger: logger, now: time.Now}
}

// Run recomputes every webtoon's counters for the UTC day containing now,
// then invalidates the ranking cache. Per-webtoon failures are counted in
// the result; only failing to list webtoons is returned as an error.
func (r *Rollup) Run(ctx context.Context) (Result, error) {
	start := r.now()
	day := start.UTC()

	ids, err := r.repo.WebtoonIDs(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("rollup: %w", err)
	}

	pool := NewWorkerPool(ctx, r.workers, r.logger)
	pool.Start()
	for _, id := range ids {
		webtoonID := id
		if !pool.Submit(func(ctx context.Context) error {
			return r.rollupOne(ctx, webtoonID, day)
		}) {
			failed := pool.Shutdown()
			r.logger.Warn("viewstat_rollup_cancelled", "webtoons", len(ids), "failed", failed)
			return Result{Webtoons: len(ids), Failed: failed}, fmt.Errorf("rollup interrupted: %w", ctx.Err())
		}
	}
	failed, err := pool.Wait()

	res := Result{Webtoons: len(ids), Failed: failed}
	if err != nil {
		return res, fmt.Errorf("rollup interrupted: %w", err)
	}

	if r.cache != nil {
		removed, err := r.cache.Invalidate(ctx)
		if err != nil {
			r.logger.Warn("ranking_cache_invalidate_failed", "error", err)
		}
		res.Invalidated = removed
	}
	res.Duration = r.now().Sub(start)

	r.logger.Info("viewstat_rollup_done",
		"webtoons", res.Webtoons,
		"failed", res.Failed,
		"cache_keys_removed", res.Invalidated,
		"duration", res.Duration,
	)
	return res, nil
}

func (r *Rollup) rollupOne(ctx context.Context, webtoonID int64, day time.Time) error {
	counters, err := r.repo.SumWindows(ctx, webtoonID, day)
	if err != nil {
		return err
	}
	return r.repo.SaveCounters(ctx, webtoonID, counters)
}

// Loop runs the rollup every interval until ctx is done
func (r *Rollup) Loop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := r.Run(ctx); err != nil {
			r.logger.Error("viewstat_rollup_failed", "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
