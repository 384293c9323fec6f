package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"webtoonhub/internal/microservices/http-api/dto"
	"webtoonhub/internal/microservices/http-api/models"
	"webtoonhub/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type webtoonMocks struct {
	webtoons *MockWebtoonRepository
	episodes *MockEpisodeRepository
	artists  *MockArtistRepository
	rankings *MockRankingInvalidator
}

func newWebtoonServiceForTest() (*webtoonService, webtoonMocks) {
	m := webtoonMocks{
		webtoons: new(MockWebtoonRepository),
		episodes: new(MockEpisodeRepository),
		artists:  new(MockArtistRepository),
		rankings: new(MockRankingInvalidator),
	}
	svc := NewWebtoonService(m.webtoons, m.episodes, m.artists, m.rankings, testAdminID).(*webtoonService)
	return svc, m
}

func TestWebtoonList_AllGenre(t *testing.T) {
	svc, m := newWebtoonServiceForTest()

	m.webtoons.On("GetAll", mock.Anything, "", 1, 20).Return([]models.Webtoon{{ID: 1}}, int64(1), nil)

	list, total, err := svc.List(context.Background(), "ALL", 0, 0)

	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, int64(1), total)
}

func TestCreateWebtoon_ArtistMissing(t *testing.T) {
	svc, m := newWebtoonServiceForTest()

	m.artists.On("GetByID", mock.Anything, int64(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), dto.CreateWebtoonDTO{Name: "Tower", Genre: "fantasy", ArtistID: 5})

	assert.Equal(t, shared.KindNotFound, shared.KindOf(err))
	m.webtoons.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateWebtoon_StampsAdmin(t *testing.T) {
	svc, m := newWebtoonServiceForTest()

	m.artists.On("GetByID", mock.Anything, int64(5)).Return(&models.Artist{ID: 5}, nil)
	m.webtoons.On("Create", mock.Anything, mock.MatchedBy(func(w *models.Webtoon) bool {
		return w.AdminID == testAdminID && w.Name == "Tower"
	})).Return(nil)

	w, err := svc.Create(context.Background(), dto.CreateWebtoonDTO{Name: " Tower ", Genre: "fantasy", ArtistID: 5})

	require.NoError(t, err)
	assert.Equal(t, "Tower", w.Name)
	m.webtoons.AssertExpectations(t)
}

func TestGetEpisode_Neighbors(t *testing.T) {
	svc, m := newWebtoonServiceForTest()

	ep := &models.Episode{ID: 11, WebtoonID: 3}
	m.episodes.On("GetByID", mock.Anything, int64(11)).Return(ep, nil)
	m.episodes.On("Neighbors", mock.Anything, ep).Return(int64Ptr(10), nil, nil)

	detail, err := svc.GetEpisode(context.Background(), 11)

	require.NoError(t, err)
	assert.Equal(t, int64(10), *detail.PrevEpisodeID)
	assert.Nil(t, detail.NextEpisodeID)
}

func TestRecordEpisodeView_UsesWebtoonAndDay(t *testing.T) {
	svc, m := newWebtoonServiceForTest()
	now := time.Date(2024, 3, 9, 23, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	m.episodes.On("GetByID", mock.Anything, int64(11)).Return(&models.Episode{ID: 11, WebtoonID: 3}, nil)
	m.webtoons.On("RecordView", mock.Anything, int64(3), now).Return(nil)

	require.NoError(t, svc.RecordEpisodeView(context.Background(), 11))
	m.webtoons.AssertExpectations(t)
}

func TestRecommend_Missing(t *testing.T) {
	svc, m := newWebtoonServiceForTest()

	m.webtoons.On("IncrementRecommend", mock.Anything, int64(3)).Return(gorm.ErrRecordNotFound)

	err := svc.Recommend(context.Background(), 3)

	assert.Equal(t, shared.KindNotFound, shared.KindOf(err))
}

func TestDeleteWebtoon_DropsRankingCache(t *testing.T) {
	svc, m := newWebtoonServiceForTest()

	m.webtoons.On("Delete", mock.Anything, int64(3)).Return(nil)
	m.rankings.On("Invalidate", mock.Anything).Return(4, nil)

	require.NoError(t, svc.Delete(context.Background(), 3))
	m.rankings.AssertExpectations(t)
}

func TestDeleteWebtoon_MissingKeepsCache(t *testing.T) {
	svc, m := newWebtoonServiceForTest()

	m.webtoons.On("Delete", mock.Anything, int64(3)).Return(shared.NotFound("webtoon not found"))

	err := svc.Delete(context.Background(), 3)

	assert.Equal(t, shared.KindNotFound, shared.KindOf(err))
	m.rankings.AssertNotCalled(t, "Invalidate", mock.Anything)
}

func TestDeleteWebtoon_CacheFailureIgnored(t *testing.T) {
	svc, m := newWebtoonServiceForTest()

	m.webtoons.On("Delete", mock.Anything, int64(3)).Return(nil)
	m.rankings.On("Invalidate", mock.Anything).Return(0, errors.New("redis down"))

	assert.NoError(t, svc.Delete(context.Background(), 3))
}

func TestUpdateWebtoon_DiscontinueDropsRankingCache(t *testing.T) {
	svc, m := newWebtoonServiceForTest()
	discontinued := true

	m.webtoons.On("GetByID", mock.Anything, int64(3)).Return(&models.Webtoon{ID: 3, Name: "Tower", Genre: "fantasy", ArtistID: 5}, nil)
	m.webtoons.On("Update", mock.Anything, mock.MatchedBy(func(w *models.Webtoon) bool {
		return w.ID == 3 && w.Discontinued
	})).Return(nil)
	m.rankings.On("Invalidate", mock.Anything).Return(2, nil)

	w, err := svc.Update(context.Background(), 3, dto.UpdateWebtoonDTO{Discontinued: &discontinued})

	require.NoError(t, err)
	assert.True(t, w.Discontinued)
	m.webtoons.AssertExpectations(t)
	m.rankings.AssertExpectations(t)
}
