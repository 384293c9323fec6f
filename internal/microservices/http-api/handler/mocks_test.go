package handler

import (
	"context"
	"time"

	"webtoonhub/internal/microservices/http-api/dto"
	"webtoonhub/internal/microservices/http-api/models"
	"webtoonhub/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password, email, name string) (*models.Member, error) {
	args := m.Called(ctx, username, password, email, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, *models.Member, error) {
	args := m.Called(ctx, username, password)
	member, _ := args.Get(1).(*models.Member)
	return args.String(0), member, args.Error(2)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*shared.AuthClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.AuthClaims), args.Error(1)
}

func (m *MockAuthService) TokenTTL() time.Duration {
	return time.Hour
}

// MockRankingService mocks the RankingService interface
type MockRankingService struct {
	mock.Mock
}

func (m *MockRankingService) Ranking(ctx context.Context, period string, genre string, limit int) ([]dto.RankedItem, error) {
	args := m.Called(ctx, period, genre, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.RankedItem), args.Error(1)
}

// MockCommentService mocks the CommentService interface
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) CreateComment(ctx context.Context, episodeID, memberID int64, content string) (*models.Comment, error) {
	args := m.Called(ctx, episodeID, memberID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) CreateReply(ctx context.Context, parentID, memberID int64, content string) (*models.Comment, error) {
	args := m.Called(ctx, parentID, memberID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) ListThreads(ctx context.Context, episodeID int64) ([]dto.ThreadResponse, error) {
	args := m.Called(ctx, episodeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ThreadResponse), args.Error(1)
}

func (m *MockCommentService) Report(ctx context.Context, commentID, memberID int64, reason string, detail *string) (dto.ReportResult, error) {
	args := m.Called(ctx, commentID, memberID, reason, detail)
	return args.Get(0).(dto.ReportResult), args.Error(1)
}

func (m *MockCommentService) Delete(ctx context.Context, commentID int64) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func (m *MockCommentService) ListReports(ctx context.Context, page, pageSize int) ([]models.CommentReport, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.CommentReport), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentService) DeleteReport(ctx context.Context, reportID int64) error {
	args := m.Called(ctx, reportID)
	return args.Error(0)
}

// MockSubscriptionService mocks the SubscriptionService interface
type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) Subscribe(ctx context.Context, memberID, webtoonID int64) (*models.Subscription, error) {
	args := m.Called(ctx, memberID, webtoonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) Unsubscribe(ctx context.Context, memberID, webtoonID int64) error {
	args := m.Called(ctx, memberID, webtoonID)
	return args.Error(0)
}

func (m *MockSubscriptionService) SetAlarm(ctx context.Context, memberID, webtoonID int64, on bool) (*models.Subscription, error) {
	args := m.Called(ctx, memberID, webtoonID, on)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) List(ctx context.Context, memberID int64) ([]models.Subscription, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Subscription), args.Error(1)
}

// MockAdvertisementService mocks the AdvertisementService interface
type MockAdvertisementService struct {
	mock.Mock
}

func (m *MockAdvertisementService) SelectForPlacement(ctx context.Context, placement string) *models.Advertisement {
	args := m.Called(ctx, placement)
	ad, _ := args.Get(0).(*models.Advertisement)
	return ad
}

func (m *MockAdvertisementService) RecordView(ctx context.Context, adID, memberID int64) (*models.AdViewLog, error) {
	args := m.Called(ctx, adID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdViewLog), args.Error(1)
}

func (m *MockAdvertisementService) ListViews(ctx context.Context, adID int64) ([]models.AdViewLog, error) {
	args := m.Called(ctx, adID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AdViewLog), args.Error(1)
}

func (m *MockAdvertisementService) List(ctx context.Context, page, pageSize int) ([]models.Advertisement, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Advertisement), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdvertisementService) GetByID(ctx context.Context, id int64) (*models.Advertisement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Advertisement), args.Error(1)
}

func (m *MockAdvertisementService) Create(ctx context.Context, in dto.CreateAdvertisementDTO) (*models.Advertisement, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Advertisement), args.Error(1)
}

func (m *MockAdvertisementService) Update(ctx context.Context, id int64, in dto.UpdateAdvertisementDTO) (*models.Advertisement, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Advertisement), args.Error(1)
}

func (m *MockAdvertisementService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

type testDeps struct {
	auth     *MockAuthService
	ranking  *MockRankingService
	comments *MockCommentService
	subs     *MockSubscriptionService
	ads      *MockAdvertisementService
}

// setupRouter builds the full router with mocked services; userToken is
// member 9, adminToken is member 1 with role admin.
func setupRouter() (*gin.Engine, testDeps) {
	gin.SetMode(gin.TestMode)
	deps := testDeps{
		auth:     new(MockAuthService),
		ranking:  new(MockRankingService),
		comments: new(MockCommentService),
		subs:     new(MockSubscriptionService),
		ads:      new(MockAdvertisementService),
	}
	deps.auth.On("ValidateToken", userToken).Return(&shared.AuthClaims{MemberID: 9, Username: "reader", Role: models.RoleUser}, nil).Maybe()
	deps.auth.On("ValidateToken", adminToken).Return(&shared.AuthClaims{MemberID: 1, Username: "root", Role: models.RoleAdmin}, nil).Maybe()

	router := NewRouter(Services{
		Auth:          deps.auth,
		Ranking:       deps.ranking,
		Comments:      deps.comments,
		Subscriptions: deps.subs,
		Ads:           deps.ads,
	}, RouterOptions{})
	return router, deps
}
