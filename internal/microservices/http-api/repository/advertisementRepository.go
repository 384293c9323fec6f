package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"webtoonhub/internal/microservices/http-api/models"
	"webtoonhub/internal/shared"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrAdNotServable rejects views of ads that are paused, ended or outside their window.
var ErrAdNotServable = shared.Conflict("advertisement is not being served")

type AdvertisementRepository interface {
	FindEligible(ctx context.Context, placement string, now time.Time) (*models.Advertisement, error)
	GetByID(ctx context.Context, id int64) (*models.Advertisement, error)
	List(ctx context.Context, page, pageSize int) ([]models.Advertisement, int64, error)
	Create(ctx context.Context, ad *models.Advertisement) error
	Update(ctx context.Context, ad *models.Advertisement) error
	Delete(ctx context.Context, id int64) error
	RecordView(ctx context.Context, adID, memberID int64, at time.Time) (*models.AdViewLog, error)
	ListViews(ctx context.Context, adID int64) ([]models.AdViewLog, error)
}

type advertisementRepository struct {
	db *gorm.DB
}

func NewAdvertisementRepository(db *gorm.DB) AdvertisementRepository {
	return &advertisementRepository{db: db}
}

// FindEligible picks one random servable ad for the placement, or nil when none qualifies.
func (r *advertisementRepository) FindEligible(ctx context.Context, placement string, now time.Time) (*models.Advertisement, error) {
	var ad models.Advertisement
	err := r.db.WithContext(ctx).
		Where("placement = ? AND status = ?", placement, models.AdStatusActive).
		Where("start_date <= ? AND end_date >= ?", now, now).
		Where("total_exposure_limit IS NULL OR current_exposure_count < total_exposure_limit").
		Order("RANDOM()").
		Limit(1).
		Take(&ad).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find eligible advertisement: %w", err)
	}
	return &ad, nil
}

func (r *advertisementRepository) GetByID(ctx context.Context, id int64) (*models.Advertisement, error) {
	var ad models.Advertisement
	if err := r.db.WithContext(ctx).First(&ad, id).Error; err != nil {
		return nil, err
	}
	return &ad, nil
}

func (r *advertisementRepository) List(ctx context.Context, page, pageSize int) ([]models.Advertisement, int64, error) {
	var list []models.Advertisement
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Advertisement{}).Count(&total).Error; err != nil {
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

func (r *advertisementRepository) Create(ctx context.Context, ad *models.Advertisement) error {
	if err := r.db.WithContext(ctx).Create(ad).Error; err != nil {
		return fmt.Errorf("create advertisement: %w", err)
	}
	return nil
}

func (r *advertisementRepository) Update(ctx context.Context, ad *models.Advertisement) error {
	if err := r.db.WithContext(ctx).Save(ad).Error; err != nil {
		return fmt.Errorf("update advertisement: %w", err)
	}
	return nil
}

func (r *advertisementRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Advertisement{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete advertisement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NotFound("advertisement not found")
	}
	return nil
}

// RecordView increments the exposure counter and appends the log row in one
// transaction. The ad row is locked so concurrent views serialize on it.
// A reached exposure cap does not reject the view; status and window do.
func (r *advertisementRepository) RecordView(ctx context.Context, adID, memberID int64, at time.Time) (*models.AdViewLog, error) {
	entry := &models.AdViewLog{MemberID: memberID, AdID: adID, ViewedAt: at}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ad models.Advertisement
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id", "status", "start_date", "end_date").First(&ad, adID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.NotFound("advertisement not found")
			}
			return err
		}
		if ad.Status != models.AdStatusActive || at.Before(ad.StartDate) || at.After(ad.EndDate) {
			return ErrAdNotServable
		}

		if err := tx.Model(&models.Advertisement{}).
			Where("id = ?", adID).
			UpdateColumn("current_exposure_count", gorm.Expr("current_exposure_count + 1")).Error; err != nil {
			return fmt.Errorf("increment exposure: %w", err)
		}

		if err := tx.Omit("Advertisement").Create(entry).Error; err != nil {
			return fmt.Errorf("append view log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *advertisementRepository) ListViews(ctx context.Context, adID int64) ([]models.AdViewLog, error) {
	var logs []models.AdViewLog
	err := r.db.WithContext(ctx).
		Where("ad_id = ?", adID).
		Order("viewed_at DESC, id DESC").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("list ad views: %w", err)
	}
	return logs, nil
}
