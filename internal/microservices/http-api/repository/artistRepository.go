package repository

import (
	"context"
	"fmt"

	"webtoonhub/internal/microservices/http-api/models"
	"webtoonhub/internal/shared"

	"gorm.io/gorm"
)

type ArtistRepository interface {
	Create(ctx context.Context, artist *models.Artist) error
	GetByID(ctx context.Context, id int64) (*models.Artist, error)
	List(ctx context.Context, page, pageSize int) ([]models.Artist, int64, error)
	Update(ctx context.Context, artist *models.Artist) error
	Delete(ctx context.Context, id int64) error
}

type artistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) Create(ctx context.Context, artist *models.Artist) error {
	if err := r.db.WithContext(ctx).Create(artist).Error; err != nil {
		return fmt.Errorf("create artist: %w", err)
	}
	return nil
}

func (r *artistRepository) GetByID(ctx context.Context, id int64) (*models.Artist, error) {
	var a models.Artist
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *artistRepository) List(ctx context.Context, page, pageSize int) ([]models.Artist, int64, error) {
	var list []models.Artist
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Artist{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Scopes(paginate(page, pageSize)).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *artistRepository) Update(ctx context.Context, artist *models.Artist) error {
	if err := r.db.WithContext(ctx).Save(artist).Error; err != nil {
		return fmt.Errorf("update artist: %w", err)
	}
	return nil
}

func (r *artistRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Artist{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete artist: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NotFound("artist not found")
	}
	return nil
}
