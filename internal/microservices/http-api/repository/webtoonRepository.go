package repository

import (
	"context"
	"fmt"
	"time"

	"webtoonhub/internal/microservices/http-api/models"
	"webtoonhub/internal/shared"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WebtoonRepository interface {
	GetAll(ctx context.Context, genre string, page, pageSize int) ([]models.Webtoon, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Webtoon, error)
	Create(ctx context.Context, w *models.Webtoon) error
	Update(ctx context.Context, w *models.Webtoon) error
	Delete(ctx context.Context, id int64) error
	IncrementRecommend(ctx context.Context, id int64) error
	RecordView(ctx context.Context, id int64, day time.Time) error
}

type webtoonRepository struct {
	db *gorm.DB
}

func NewWebtoonRepository(db *gorm.DB) WebtoonRepository {
	return &webtoonRepository{db: db}
}

// GetAll lists webtoons newest first; an empty genre means every genre.
func (r *webtoonRepository) GetAll(ctx context.Context, genre string, page, pageSize int) ([]models.Webtoon, int64, error) {
	var list []models.Webtoon
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Webtoon{})
	if genre != "" {
		q = q.Where("genre = ?", genre)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := q.Order("created_at DESC").
		Scopes(paginate(page, pageSize)).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *webtoonRepository) GetByID(ctx context.Context, id int64) (*models.Webtoon, error) {
	var w models.Webtoon
	if err := r.db.WithContext(ctx).Preload("Artist").First(&w, id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *webtoonRepository) Create(ctx context.Context, w *models.Webtoon) error {
	if err := r.db.WithContext(ctx).Omit("Artist").Create(w).Error; err != nil {
		return fmt.Errorf("create webtoon: %w", err)
	}
	return nil
}

func (r *webtoonRepository) Update(ctx context.Context, w *models.Webtoon) error {
	if err := r.db.WithContext(ctx).Omit("Artist").Save(w).Error; err != nil {
		return fmt.Errorf("update webtoon: %w", err)
	}
	return nil
}

// Delete removes the webtoon; episodes, comments and stats go with it through the FKs.
func (r *webtoonRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Webtoon{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete webtoon: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NotFound("webtoon not found")
	}
	return nil
}

func (r *webtoonRepository) IncrementRecommend(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Model(&models.Webtoon{}).
		Where("id = ?", id).
		UpdateColumn("recommend", gorm.Expr("recommend + 1"))
	if result.Error != nil {
		return fmt.Errorf("recommend webtoon: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NotFound("webtoon not found")
	}
	return nil
}

// RecordView bumps the cumulative counter and the day's stat row together.
func (r *webtoonRepository) RecordView(ctx context.Context, id int64, day time.Time) error {
	statDate := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Webtoon{}).
			Where("id = ?", id).
			UpdateColumn("views", gorm.Expr("views + 1"))
		if result.Error != nil {
			return fmt.Errorf("increment views: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.NotFound("webtoon not found")
		}

		stat := models.WebtoonViewStat{WebtoonID: id, StatDate: statDate, Views: 1}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "webtoon_id"}, {Name: "stat_date"}},
			DoUpdates: clause.Assignments(map[string]any{"views": gorm.Expr("webtoon_view_stats.views + 1")}),
		}).Create(&stat).Error
		if err != nil {
			return fmt.Errorf("upsert view stat: %w", err)
		}
		return nil
	})
}
