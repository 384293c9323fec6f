package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"webtoonhub/internal/microservices/http-api/dto"
	"webtoonhub/internal/microservices/http-api/models"
	"webtoonhub/internal/microservices/http-api/repository"
	"webtoonhub/internal/shared"
)

type AdvertisementService interface {
	// SelectForPlacement returns nil (no error) when nothing is servable or the lookup fails.
	SelectForPlacement(ctx context.Context, placement string) *models.Advertisement
	RecordView(ctx context.Context, adID, memberID int64) (*models.AdViewLog, error)
	ListViews(ctx context.Context, adID int64) ([]models.AdViewLog, error)

	List(ctx context.Context, page, pageSize int) ([]models.Advertisement, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Advertisement, error)
	Create(ctx context.Context, in dto.CreateAdvertisementDTO) (*models.Advertisement, error)
	Update(ctx context.Context, id int64, in dto.UpdateAdvertisementDTO) (*models.Advertisement, error)
	Delete(ctx context.Context, id int64) error
}

type advertisementService struct {
	repo    repository.AdvertisementRepository
	adminID int64
	now     func() time.Time
	logger  *slog.Logger
}

func NewAdvertisementService(repo repository.AdvertisementRepository, defaultAdminID int64) AdvertisementService {
	return &advertisementService{repo: repo, adminID: defaultAdminID, now: time.Now, logger: slog.Default()}
}

func (s *advertisementService) SelectForPlacement(ctx context.Context, placement string) *models.Advertisement {
	placement = strings.TrimSpace(placement)
	if placement == "" {
		return nil
	}
	now := s.now()

	ad, err := s.repo.FindEligible(ctx, placement, now)
	if err != nil {
		s.logger.Error("ad_select_failed", "placement", placement, "error", err)
		return nil
	}
	// the query already filters; a row that changed under us is dropped here
	if ad == nil || ad.Placement != placement || !ad.EligibleAt(now) {
		return nil
	}
	return ad
}

func (s *advertisementService) RecordView(ctx context.Context, adID, memberID int64) (*models.AdViewLog, error) {
	entry, err := s.repo.RecordView(ctx, adID, memberID, s.now())
	if err != nil {
		return nil, lookupErr(err, "advertisement not found")
	}
	return entry, nil
}

func (s *advertisementService) ListViews(ctx context.Context, adID int64) ([]models.AdViewLog, error) {
	if _, err := s.repo.GetByID(ctx, adID); err != nil {
		return nil, lookupErr(err, "advertisement not found")
	}
	logs, err := s.repo.ListViews(ctx, adID)
	if err != nil {
		return nil, shared.Internal("list ad views", err)
	}
	return logs, nil
}

func (s *advertisementService) List(ctx context.Context, page, pageSize int) ([]models.Advertisement, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	list, total, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, shared.Internal("list advertisements", err)
	}
	return list, total, nil
}

func (s *advertisementService) GetByID(ctx context.Context, id int64) (*models.Advertisement, error) {
	ad, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "advertisement not found")
	}
	return ad, nil
}

func (s *advertisementService) Create(ctx context.Context, in dto.CreateAdvertisementDTO) (*models.Advertisement, error) {
	ad := in.ToModel()
	if err := validateAdWindow(&ad); err != nil {
		return nil, err
	}
	ad.AdminID = s.adminID
	if err := s.repo.Create(ctx, &ad); err != nil {
		return nil, shared.Internal("create advertisement", err)
	}
	return &ad, nil
}

func (s *advertisementService) Update(ctx context.Context, id int64, in dto.UpdateAdvertisementDTO) (*models.Advertisement, error) {
	ad, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "advertisement not found")
	}
	in.ApplyTo(ad)
	if err := validateAdWindow(ad); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, ad); err != nil {
		return nil, shared.Internal("update advertisement", err)
	}
	return ad, nil
}

func (s *advertisementService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return lookupErr(err, "advertisement not found")
	}
	return nil
}

func validateAdWindow(ad *models.Advertisement) error {
	if strings.TrimSpace(ad.Placement) == "" {
		return shared.Validation("placement is required")
	}
	if ad.EndDate.Before(ad.StartDate) {
		return shared.Validation("end_date must not be before start_date")
	}
	return nil
}
