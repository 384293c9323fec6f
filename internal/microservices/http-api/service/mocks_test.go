package service

import (
	"context"
	"time"

	"webtoonhub/internal/microservices/http-api/models"
	"webtoonhub/internal/microservices/http-api/repository"
	"webtoonhub/internal/shared"

	"github.com/stretchr/testify/mock"
)

// MockMemberRepository mocks the MemberRepository interface
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Create(ctx context.Context, member *models.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) FindByUsername(ctx context.Context, username string) (*models.Member, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByEmail(ctx context.Context, email string) (*models.Member, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByID(ctx context.Context, id int64) (*models.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MockMemberRepository) List(ctx context.Context, page, pageSize int) ([]models.Member, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Member), args.Get(1).(int64), args.Error(2)
}

func (m *MockMemberRepository) Update(ctx context.Context, member *models.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMemberRepository) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

// MockArtistRepository mocks the ArtistRepository interface
type MockArtistRepository struct {
	mock.Mock
}

func (m *MockArtistRepository) Create(ctx context.Context, artist *models.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

func (m *MockArtistRepository) GetByID(ctx context.Context, id int64) (*models.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artist), args.Error(1)
}

func (m *MockArtistRepository) List(ctx context.Context, page, pageSize int) ([]models.Artist, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Artist), args.Get(1).(int64), args.Error(2)
}

func (m *MockArtistRepository) Update(ctx context.Context, artist *models.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

func (m *MockArtistRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockWebtoonRepository mocks the WebtoonRepository interface
type MockWebtoonRepository struct {
	mock.Mock
}

func (m *MockWebtoonRepository) GetAll(ctx context.Context, genre string, page, pageSize int) ([]models.Webtoon, int64, error) {
	args := m.Called(ctx, genre, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Webtoon), args.Get(1).(int64), args.Error(2)
}

func (m *MockWebtoonRepository) GetByID(ctx context.Context, id int64) (*models.Webtoon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Webtoon), args.Error(1)
}

func (m *MockWebtoonRepository) Create(ctx context.Context, w *models.Webtoon) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWebtoonRepository) Update(ctx context.Context, w *models.Webtoon) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWebtoonRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWebtoonRepository) IncrementRecommend(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWebtoonRepository) RecordView(ctx context.Context, id int64, day time.Time) error {
	args := m.Called(ctx, id, day)
	return args.Error(0)
}

// MockEpisodeRepository mocks the EpisodeRepository interface
type MockEpisodeRepository struct {
	mock.Mock
}

func (m *MockEpisodeRepository) List(ctx context.Context, page, pageSize int) ([]models.Episode, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Episode), args.Get(1).(int64), args.Error(2)
}

func (m *MockEpisodeRepository) ListByWebtoon(ctx context.Context, webtoonID int64) ([]models.Episode, error) {
	args := m.Called(ctx, webtoonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Episode), args.Error(1)
}

func (m *MockEpisodeRepository) GetByID(ctx context.Context, id int64) (*models.Episode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Episode), args.Error(1)
}

func (m *MockEpisodeRepository) Neighbors(ctx context.Context, ep *models.Episode) (*int64, *int64, error) {
	args := m.Called(ctx, ep)
	prev, _ := args.Get(0).(*int64)
	next, _ := args.Get(1).(*int64)
	return prev, next, args.Error(2)
}

func (m *MockEpisodeRepository) Create(ctx context.Context, ep *models.Episode) error {
	args := m.Called(ctx, ep)
	return args.Error(0)
}

func (m *MockEpisodeRepository) Update(ctx context.Context, ep *models.Episode) error {
	args := m.Called(ctx, ep)
	return args.Error(0)
}

func (m *MockEpisodeRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCommentRepository mocks the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByEpisode(ctx context.Context, episodeID int64) ([]models.Comment, error) {
	args := m.Called(ctx, episodeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, commentID int64) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func (m *MockCommentRepository) SaveReport(ctx context.Context, report *models.CommentReport) (bool, error) {
	args := m.Called(ctx, report)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommentRepository) ListReports(ctx context.Context, page, pageSize int) ([]models.CommentReport, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.CommentReport), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepository) DeleteReport(ctx context.Context, reportID int64) error {
	args := m.Called(ctx, reportID)
	return args.Error(0)
}

// MockSubscriptionRepository mocks the SubscriptionRepository interface
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Find(ctx context.Context, memberID, webtoonID int64) (*models.Subscription, error) {
	args := m.Called(ctx, memberID, webtoonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, sub *models.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Save(ctx context.Context, sub *models.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) ListByMember(ctx context.Context, memberID int64) ([]models.Subscription, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Subscription), args.Error(1)
}

// MockAdvertisementRepository mocks the AdvertisementRepository interface
type MockAdvertisementRepository struct {
	mock.Mock
}

func (m *MockAdvertisementRepository) FindEligible(ctx context.Context, placement string, now time.Time) (*models.Advertisement, error) {
	args := m.Called(ctx, placement, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Advertisement), args.Error(1)
}

func (m *MockAdvertisementRepository) GetByID(ctx context.Context, id int64) (*models.Advertisement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Advertisement), args.Error(1)
}

func (m *MockAdvertisementRepository) List(ctx context.Context, page, pageSize int) ([]models.Advertisement, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Advertisement), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdvertisementRepository) Create(ctx context.Context, ad *models.Advertisement) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}

func (m *MockAdvertisementRepository) Update(ctx context.Context, ad *models.Advertisement) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}

func (m *MockAdvertisementRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdvertisementRepository) RecordView(ctx context.Context, adID, memberID int64, at time.Time) (*models.AdViewLog, error) {
	args := m.Called(ctx, adID, memberID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdViewLog), args.Error(1)
}

func (m *MockAdvertisementRepository) ListViews(ctx context.Context, adID int64) ([]models.AdViewLog, error) {
	args := m.Called(ctx, adID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AdViewLog), args.Error(1)
}

// MockRankingRepository mocks the RankingRepository interface
type MockRankingRepository struct {
	mock.Mock
}

func (m *MockRankingRepository) TopByPeriod(ctx context.Context, period shared.Period, genre string, limit int) ([]models.Webtoon, error) {
	args := m.Called(ctx, period, genre, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Webtoon), args.Error(1)
}

var (
	_ repository.MemberRepository        = (*MockMemberRepository)(nil)
	_ repository.ArtistRepository        = (*MockArtistRepository)(nil)
	_ repository.WebtoonRepository       = (*MockWebtoonRepository)(nil)
	_ repository.EpisodeRepository       = (*MockEpisodeRepository)(nil)
	_ repository.CommentRepository       = (*MockCommentRepository)(nil)
	_ repository.SubscriptionRepository  = (*MockSubscriptionRepository)(nil)
	_ repository.AdvertisementRepository = (*MockAdvertisementRepository)(nil)
	_ repository.RankingRepository       = (*MockRankingRepository)(nil)
)

func int64Ptr(v int64) *int64 { return &v }

func strPtr(s string) *string { return &s }

// MockRankingInvalidator mocks the RankingInvalidator interface
type MockRankingInvalidator struct {
	mock.Mock
}

func (m *MockRankingInvalidator) Invalidate(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
