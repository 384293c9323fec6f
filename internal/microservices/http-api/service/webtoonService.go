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

type WebtoonService interface {
	List(ctx context.Context, genre string, page, pageSize int) ([]models.Webtoon, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Webtoon, error)
	Create(ctx context.Context, in dto.CreateWebtoonDTO) (*models.Webtoon, error)
	Update(ctx context.Context, id int64, in dto.UpdateWebtoonDTO) (*models.Webtoon, error)
	Delete(ctx context.Context, id int64) error
	Recommend(ctx context.Context, id int64) error

	ListEpisodes(ctx context.Context, webtoonID int64) ([]models.Episode, error)
	ListAllEpisodes(ctx context.Context, page, pageSize int) ([]models.Episode, int64, error)
	GetEpisode(ctx context.Context, id int64) (*dto.EpisodeDetailResponse, error)
	CreateEpisode(ctx context.Context, in dto.CreateEpisodeDTO) (*models.Episode, error)
	UpdateEpisode(ctx context.Context, id int64, in dto.UpdateEpisodeDTO) (*models.Episode, error)
	DeleteEpisode(ctx context.Context, id int64) error
	RecordEpisodeView(ctx context.Context, episodeID int64) error
}

type webtoonService struct {
	repo        repository.WebtoonRepository
	episodeRepo repository.EpisodeRepository
	artistRepo  repository.ArtistRepository
	rankings    RankingInvalidator
	adminID     int64
	now         func() time.Time
	logger      *slog.Logger
}

func NewWebtoonService(
	repo repository.WebtoonRepository,
	episodeRepo repository.EpisodeRepository,
	artistRepo repository.ArtistRepository,
	rankings RankingInvalidator,
	defaultAdminID int64,
) WebtoonService {
	return &webtoonService{
		repo:        repo,
		episodeRepo: episodeRepo,
		artistRepo:  artistRepo,
		rankings:    rankings,
		adminID:     defaultAdminID,
		now:         time.Now,
		logger:      slog.Default(),
	}
}

// dropRankings clears cached ranking pages; failures are only logged.
func (s *webtoonService) dropRankings(ctx context.Context, webtoonID int64) {
	if s.rankings == nil {
		return
	}
	if _, err := s.rankings.Invalidate(ctx); err != nil {
		s.logger.Warn("ranking_cache_invalidate_failed", "webtoon_id", webtoonID, "error", err)
	}
}

func (s *webtoonService) List(ctx context.Context, genre string, page, pageSize int) ([]models.Webtoon, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	list, total, err := s.repo.GetAll(ctx, normalizeGenre(genre), page, pageSize)
	if err != nil {
		return nil, 0, shared.Internal("list webtoons", err)
	}
	return list, total, nil
}

func (s *webtoonService) GetByID(ctx context.Context, id int64) (*models.Webtoon, error) {
	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "webtoon not found")
	}
	return w, nil
}

func (s *webtoonService) Create(ctx context.Context, in dto.CreateWebtoonDTO) (*models.Webtoon, error) {
	w := in.ToModel()
	w.Name = strings.TrimSpace(w.Name)
	w.Genre = strings.TrimSpace(w.Genre)
	if w.Name == "" || w.Genre == "" {
		return nil, shared.Validation("name and genre are required")
	}
	if _, err := s.artistRepo.GetByID(ctx, w.ArtistID); err != nil {
		return nil, lookupErr(err, "artist not found")
	}
	w.AdminID = s.adminID

	if err := s.repo.Create(ctx, &w); err != nil {
		return nil, shared.Internal("create webtoon", err)
	}
	return &w, nil
}

func (s *webtoonService) Update(ctx context.Context, id int64, in dto.UpdateWebtoonDTO) (*models.Webtoon, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "webtoon not found")
	}
	if in.ArtistID != nil && *in.ArtistID != existing.ArtistID {
		if _, err := s.artistRepo.GetByID(ctx, *in.ArtistID); err != nil {
			return nil, lookupErr(err, "artist not found")
		}
	}
	in.ApplyTo(existing)
	if strings.TrimSpace(existing.Name) == "" || strings.TrimSpace(existing.Genre) == "" {
		return nil, shared.Validation("name and genre must not be empty")
	}
	existing.Artist = nil

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, shared.Internal("update webtoon", err)
	}
	s.dropRankings(ctx, id)
	return existing, nil
}

func (s *webtoonService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return lookupErr(err, "webtoon not found")
	}
	s.dropRankings(ctx, id)
	return nil
}

func (s *webtoonService) Recommend(ctx context.Context, id int64) error {
	if err := s.repo.IncrementRecommend(ctx, id); err != nil {
		return lookupErr(err, "webtoon not found")
	}
	return nil
}

func (s *webtoonService) ListEpisodes(ctx context.Context, webtoonID int64) ([]models.Episode, error) {
	if _, err := s.repo.GetByID(ctx, webtoonID); err != nil {
		return nil, lookupErr(err, "webtoon not found")
	}
	list, err := s.episodeRepo.ListByWebtoon(ctx, webtoonID)
	if err != nil {
		return nil, shared.Internal("list episodes", err)
	}
	return list, nil
}

func (s *webtoonService) ListAllEpisodes(ctx context.Context, page, pageSize int) ([]models.Episode, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	list, total, err := s.episodeRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, shared.Internal("list episodes", err)
	}
	return list, total, nil
}

// GetEpisode returns the episode with its prev/next neighbours in the same webtoon
func (s *webtoonService) GetEpisode(ctx context.Context, id int64) (*dto.EpisodeDetailResponse, error) {
	ep, err := s.episodeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "episode not found")
	}
	prev, next, err := s.episodeRepo.Neighbors(ctx, ep)
	if err != nil {
		return nil, shared.Internal("episode navigation", err)
	}
	return &dto.EpisodeDetailResponse{Episode: *ep, PrevEpisodeID: prev, NextEpisodeID: next}, nil
}

func (s *webtoonService) CreateEpisode(ctx context.Context, in dto.CreateEpisodeDTO) (*models.Episode, error) {
	if _, err := s.repo.GetByID(ctx, in.WebtoonID); err != nil {
		return nil, lookupErr(err, "webtoon not found")
	}
	ep := in.ToModel(s.now())
	ep.AdminID = s.adminID
	if err := s.episodeRepo.Create(ctx, &ep); err != nil {
		return nil, shared.Internal("create episode", err)
	}
	return &ep, nil
}

func (s *webtoonService) UpdateEpisode(ctx context.Context, id int64, in dto.UpdateEpisodeDTO) (*models.Episode, error) {
	ep, err := s.episodeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "episode not found")
	}
	in.ApplyTo(ep)
	if err := s.episodeRepo.Update(ctx, ep); err != nil {
		return nil, shared.Internal("update episode", err)
	}
	return ep, nil
}

func (s *webtoonService) DeleteEpisode(ctx context.Context, id int64) error {
	if err := s.episodeRepo.Delete(ctx, id); err != nil {
		return lookupErr(err, "episode not found")
	}
	return nil
}

// RecordEpisodeView counts one read of the episode against its webtoon
func (s *webtoonService) RecordEpisodeView(ctx context.Context, episodeID int64) error {
	ep, err := s.episodeRepo.GetByID(ctx, episodeID)
	if err != nil {
		return lookupErr(err, "episode not found")
	}
	if err := s.repo.RecordView(ctx, ep.WebtoonID, s.now().UTC()); err != nil {
		return lookupErr(err, "webtoon not found")
	}
	return nil
}
