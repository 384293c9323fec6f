package repository

import (
	"context"
	"errors"
	"fmt"

	"webtoonhub/internal/microservices/http-api/models"
	"webtoonhub/internal/shared"

	"gorm.io/gorm"
)

type EpisodeRepository interface {
	List(ctx context.Context, page, pageSize int) ([]models.Episode, int64, error)
	ListByWebtoon(ctx context.Context, webtoonID int64) ([]models.Episode, error)
	GetByID(ctx context.Context, id int64) (*models.Episode, error)
	Neighbors(ctx context.Context, ep *models.Episode) (prevID, nextID *int64, err error)
	Create(ctx context.Context, ep *models.Episode) error
	Update(ctx context.Context, ep *models.Episode) error
	Delete(ctx context.Context, id int64) error
}

type episodeRepository struct {
	db *gorm.DB
}

func NewEpisodeRepository(db *gorm.DB) EpisodeRepository {
	return &episodeRepository{db: db}
}

func (r *episodeRepository) List(ctx context.Context, page, pageSize int) ([]models.Episode, int64, error) {
	var list []models.Episode
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Episode{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.WithContext(ctx).
		Order("id DESC").
		Scopes(paginate(page, pageSize)).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListByWebtoon returns a webtoon's episodes in reading order.
func (r *episodeRepository) ListByWebtoon(ctx context.Context, webtoonID int64) ([]models.Episode, error) {
	var list []models.Episode
	if err := r.db.WithContext(ctx).
		Where("webtoon_id = ?", webtoonID).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	return list, nil
}

func (r *episodeRepository) GetByID(ctx context.Context, id int64) (*models.Episode, error) {
	var ep models.Episode
	if err := r.db.WithContext(ctx).First(&ep, id).Error; err != nil {
		return nil, err
	}
	return &ep, nil
}

// Neighbors finds the previous and next episode ids of the same webtoon, ordered by id.
func (r *episodeRepository) Neighbors(ctx context.Context, ep *models.Episode) (*int64, *int64, error) {
	prev, err := r.neighbor(ctx, ep, "id < ?", "id DESC")
	if err != nil {
		return nil, nil, err
	}
	next, err := r.neighbor(ctx, ep, "id > ?", "id ASC")
	if err != nil {
		return nil, nil, err
	}
	return prev, next, nil
}

func (r *episodeRepository) neighbor(ctx context.Context, ep *models.Episode, cond, order string) (*int64, error) {
	var n models.Episode
	err := r.db.WithContext(ctx).
		Select("id").
		Where("webtoon_id = ?", ep.WebtoonID).
		Where(cond, ep.ID).
		Order(order).
		First(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("episode neighbor: %w", err)
	}
	return &n.ID, nil
}

func (r *episodeRepository) Create(ctx context.Context, ep *models.Episode) error {
	if err := r.db.WithContext(ctx).Create(ep).Error; err != nil {
		return fmt.Errorf("create episode: %w", err)
	}
	return nil
}

func (r *episodeRepository) Update(ctx context.Context, ep *models.Episode) error {
	if err := r.db.WithContext(ctx).Save(ep).Error; err != nil {
		return fmt.Errorf("update episode: %w", err)
	}
	return nil
}

func (r *episodeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Episode{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete episode: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NotFound("episode not found")
	}
	return nil
}
