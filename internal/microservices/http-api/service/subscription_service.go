package service

import (
	"context"
	"errors"

	"webtoonhub/internal/microservices/http-api/models"
	"webtoonhub/internal/microservices/http-api/repository"
	"webtoonhub/internal/shared"

	"gorm.io/gorm"
)

var ErrSubscriptionInactive = shared.Validation("subscription is not active")

type SubscriptionService interface {
	Subscribe(ctx context.Context, memberID, webtoonID int64) (*models.Subscription, error)
	Unsubscribe(ctx context.Context, memberID, webtoonID int64) error
	SetAlarm(ctx context.Context, memberID, webtoonID int64, on bool) (*models.Subscription, error)
	List(ctx context.Context, memberID int64) ([]models.Subscription, error)
}

type subscriptionService struct {
	repo        repository.SubscriptionRepository
	webtoonRepo repository.WebtoonRepository
}

func NewSubscriptionService(repo repository.SubscriptionRepository, webtoonRepo repository.WebtoonRepository) SubscriptionService {
	return &subscriptionService{repo: repo, webtoonRepo: webtoonRepo}
}

// Subscribe: no row -> ACTIVE, INACTIVE -> ACTIVE, ACTIVE stays as is
func (s *subscriptionService) Subscribe(ctx context.Context, memberID, webtoonID int64) (*models.Subscription, error) {
	if _, err := s.webtoonRepo.GetByID(ctx, webtoonID); err != nil {
		return nil, lookupErr(err, "webtoon not found")
	}

	sub, err := s.repo.Find(ctx, memberID, webtoonID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		sub = &models.Subscription{
			MemberID:  memberID,
			WebtoonID: webtoonID,
			Status:    models.SubscriptionActive,
		}
		if err := s.repo.Create(ctx, sub); err != nil {
			if !shared.IsUniqueViolation(err) {
				return nil, shared.Internal("create subscription", err)
			}
			// a concurrent subscribe created the row first
			return s.reactivate(ctx, memberID, webtoonID)
		}
		return sub, nil
	case err != nil:
		return nil, shared.Internal("find subscription", err)
	}

	if sub.IsActive() {
		return sub, nil
	}
	sub.Status = models.SubscriptionActive
	if err := s.repo.Save(ctx, sub); err != nil {
		return nil, shared.Internal("reactivate subscription", err)
	}
	return sub, nil
}

func (s *subscriptionService) reactivate(ctx context.Context, memberID, webtoonID int64) (*models.Subscription, error) {
	sub, err := s.repo.Find(ctx, memberID, webtoonID)
	if err != nil {
		return nil, shared.Internal("find subscription", err)
	}
	if sub.IsActive() {
		return sub, nil
	}
	sub.Status = models.SubscriptionActive
	if err := s.repo.Save(ctx, sub); err != nil {
		return nil, shared.Internal("reactivate subscription", err)
	}
	return sub, nil
}

// Unsubscribe deactivates the row and clears the alarm; unknown pairs are NotFound
func (s *subscriptionService) Unsubscribe(ctx context.Context, memberID, webtoonID int64) error {
	sub, err := s.repo.Find(ctx, memberID, webtoonID)
	if err != nil {
		return lookupErr(err, "subscription not found")
	}
	if !sub.IsActive() && !sub.AlarmOn {
		return nil
	}
	sub.Status = models.SubscriptionInactive
	sub.AlarmOn = false
	if err := s.repo.Save(ctx, sub); err != nil {
		return shared.Internal("deactivate subscription", err)
	}
	return nil
}

// SetAlarm is only allowed on an ACTIVE subscription
func (s *subscriptionService) SetAlarm(ctx context.Context, memberID, webtoonID int64, on bool) (*models.Subscription, error) {
	sub, err := s.repo.Find(ctx, memberID, webtoonID)
	if err != nil {
		return nil, lookupErr(err, "subscription not found")
	}
	if !sub.IsActive() {
		return nil, ErrSubscriptionInactive
	}
	if sub.AlarmOn == on {
		return sub, nil
	}
	sub.AlarmOn = on
	if err := s.repo.Save(ctx, sub); err != nil {
		return nil, shared.Internal("update alarm", err)
	}
	return sub, nil
}

func (s *subscriptionService) List(ctx context.Context, memberID int64) ([]models.Subscription, error) {
	subs, err := s.repo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, shared.Internal("list subscriptions", err)
	}
	return subs, nil
}
