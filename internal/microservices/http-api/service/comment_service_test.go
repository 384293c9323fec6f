package service

import (
	"context"
	"errors"
	"testing"

	"webtoonhub/internal/microservices/http-api/dto"
	"webtoonhub/internal/microservices/http-api/models"
	"webtoonhub/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testAdminID = int64(1)

func TestCreateComment_Success(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	episodeRepo := new(MockEpisodeRepository)
	svc := NewCommentService(commentRepo, episodeRepo, testAdminID)

	episodeRepo.On("GetByID", mock.Anything, int64(5)).Return(&models.Episode{ID: 5, WebtoonID: 3}, nil)
	commentRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Comment) bool {
		return c.EpisodeID == 5 && c.WebtoonID == 3 && c.MemberID == 9 && c.ParentID == nil && c.AdminID == testAdminID
	})).Return(nil)

	c, err := svc.CreateComment(context.Background(), 5, 9, "  great episode ")

	require.NoError(t, err)
	assert.Equal(t, "great episode", c.Content)
	commentRepo.AssertExpectations(t)
}

func TestCreateComment_RejectsMarkerAndEmpty(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	episodeRepo := new(MockEpisodeRepository)
	svc := NewCommentService(commentRepo, episodeRepo, testAdminID)

	_, err := svc.CreateComment(context.Background(), 5, 9, "   ")
	assert.Equal(t, shared.KindValidation, shared.KindOf(err))

	_, err = svc.CreateComment(context.Background(), 5, 9, "::p[3] sneaky")
	assert.Equal(t, shared.KindValidation, shared.KindOf(err))

	episodeRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCreateReply_UsesParentEpisode(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	episodeRepo := new(MockEpisodeRepository)
	svc := NewCommentService(commentRepo, episodeRepo, testAdminID)

	commentRepo.On("GetByID", mock.Anything, int64(40)).Return(&models.Comment{ID: 40, EpisodeID: 5, WebtoonID: 3}, nil)
	commentRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Comment) bool {
		return c.ParentID != nil && *c.ParentID == 40 && c.EpisodeID == 5
	})).Return(nil)

	reply, err := svc.CreateReply(context.Background(), 40, 9, "agreed")

	require.NoError(t, err)
	assert.Equal(t, int64(40), *reply.ParentID)
	commentRepo.AssertExpectations(t)
}

func TestCreateReply_ParentMissing(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	svc := NewCommentService(commentRepo, new(MockEpisodeRepository), testAdminID)

	commentRepo.On("GetByID", mock.Anything, int64(40)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateReply(context.Background(), 40, 9, "agreed")

	assert.Equal(t, shared.KindNotFound, shared.KindOf(err))
}

func TestReport_CreatedThenUpdated(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	svc := NewCommentService(commentRepo, new(MockEpisodeRepository), testAdminID)

	commentRepo.On("GetByID", mock.Anything, int64(12)).Return(&models.Comment{ID: 12}, nil)
	commentRepo.On("SaveReport", mock.Anything, mock.AnythingOfType("*models.CommentReport")).Return(true, nil).Once()
	commentRepo.On("SaveReport", mock.Anything, mock.AnythingOfType("*models.CommentReport")).Return(false, nil).Once()

	first, err := svc.Report(context.Background(), 12, 9, "spam", nil)
	require.NoError(t, err)
	assert.Equal(t, dto.ReportCreated, first)

	second, err := svc.Report(context.Background(), 12, 9, "abuse", strPtr("repeat offender"))
	require.NoError(t, err)
	assert.Equal(t, dto.ReportUpdated, second)
	commentRepo.AssertExpectations(t)
}

func TestReport_MissingReason(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	svc := NewCommentService(commentRepo, new(MockEpisodeRepository), testAdminID)

	_, err := svc.Report(context.Background(), 12, 9, "  ", nil)

	assert.Equal(t, shared.KindValidation, shared.KindOf(err))
	commentRepo.AssertNotCalled(t, "SaveReport", mock.Anything, mock.Anything)
}

func TestReport_StorageFailure(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	svc := NewCommentService(commentRepo, new(MockEpisodeRepository), testAdminID)

	commentRepo.On("GetByID", mock.Anything, int64(12)).Return(&models.Comment{ID: 12}, nil)
	commentRepo.On("SaveReport", mock.Anything, mock.Anything).Return(false, errors.New("db down"))

	_, err := svc.Report(context.Background(), 12, 9, "spam", nil)

	assert.Equal(t, shared.KindInternal, shared.KindOf(err))
}

func TestDeleteComment_NotFound(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	svc := NewCommentService(commentRepo, new(MockEpisodeRepository), testAdminID)

	commentRepo.On("Delete", mock.Anything, int64(42)).Return(shared.NotFound("Not Found"))

	err := svc.Delete(context.Background(), 42)

	assert.Equal(t, shared.KindNotFound, shared.KindOf(err))
	assert.EqualError(t, err, "Not Found")
}

func TestListThreads_EpisodeMissing(t *testing.T) {
	episodeRepo := new(MockEpisodeRepository)
	svc := NewCommentService(new(MockCommentRepository), episodeRepo, testAdminID)

	episodeRepo.On("GetByID", mock.Anything, int64(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ListThreads(context.Background(), 5)

	assert.Equal(t, shared.KindNotFound, shared.KindOf(err))
}
