package repository

import (
	"context"
	"fmt"

	"webtoonhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	Find(ctx context.Context, memberID, webtoonID int64) (*models.Subscription, error)
	Create(ctx context.Context, sub *models.Subscription) error
	Save(ctx context.Context, sub *models.Subscription) error
	ListByMember(ctx context.Context, memberID int64) ([]models.Subscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Find(ctx context.Context, memberID, webtoonID int64) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.WithContext(ctx).
		Where("member_id = ? AND webtoon_id = ?", memberID, webtoonID).
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *models.Subscription) error {
	if err := r.db.WithContext(ctx).Omit("Member", "Webtoon").Create(sub).Error; err != nil {
		return fmt.Errorf("create subscription: %w", err)
	}
	return nil
}

func (r *subscriptionRepository) Save(ctx context.Context, sub *models.Subscription) error {
	if err := r.db.WithContext(ctx).Omit("Member", "Webtoon").Save(sub).Error; err != nil {
		return fmt.Errorf("save subscription: %w", err)
	}
	return nil
}

// ListByMember returns the member's active subscriptions with their webtoons.
func (r *subscriptionRepository) ListByMember(ctx context.Context, memberID int64) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.WithContext(ctx).
		Where("member_id = ? AND status = ?", memberID, models.SubscriptionActive).
		Preload("Webtoon").
		Order("updated_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return subs, nil
}
