package viewstat

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"webtoonhub/internal/microservices/http-api/repository"
	"webtoonhub/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockViewStatRepository mocks the ViewStatRepository interface
type MockViewStatRepository struct {
	mock.Mock
}

func (m *MockViewStatRepository) WebtoonIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockViewStatRepository) SumWindows(ctx context.Context, webtoonID int64, day time.Time) (repository.WindowCounters, error) {
	args := m.Called(ctx, webtoonID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.WindowCounters), args.Error(1)
}

func (m *MockViewStatRepository) SaveCounters(ctx context.Context, webtoonID int64, counters repository.WindowCounters) error {
	args := m.Called(ctx, webtoonID, counters)
	return args.Error(0)
}

type fakeCache struct {
	calls atomic.Int32
	err   error
}

func (f *fakeCache) Invalidate(ctx context.Context) (int, error) {
	f.calls.Add(1)
	return 3, f.err
}

var rollupNow = time.Date(2024, 8, 20, 4, 0, 0, 0, time.UTC)

func newRollupForTest(repo *MockViewStatRepository, cache CacheInvalidator) *Rollup {
	r := NewRollup(repo, cache, 2, nil)
	r.now = func() time.Time { return rollupNow }
	return r
}

func TestRollup_SavesEveryWebtoonAndInvalidates(t *testing.T) {
	repo := new(MockViewStatRepository)
	cache := &fakeCache{}
	r := newRollupForTest(repo, cache)

	counters := repository.WindowCounters{
		shared.PeriodDaily:   5,
		shared.PeriodWeekly:  20,
		shared.PeriodMonthly: 50,
		shared.PeriodYearly:  90,
	}
	repo.On("WebtoonIDs", mock.Anything).Return([]int64{1, 2, 3}, nil)
	for _, id := range []int64{1, 2, 3} {
		repo.On("SumWindows", mock.Anything, id, rollupNow).Return(counters, nil)
		repo.On("SaveCounters", mock.Anything, id, counters).Return(nil)
	}

	res, err := r.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, res.Webtoons)
	assert.Equal(t, int64(0), res.Failed)
	assert.Equal(t, 3, res.Invalidated)
	assert.Equal(t, int32(1), cache.calls.Load())
	repo.AssertExpectations(t)
}

func TestRollup_OneFailureDoesNotStopOthers(t *testing.T) {
	repo := new(MockViewStatRepository)
	r := newRollupForTest(repo, &fakeCache{})

	counters := repository.WindowCounters{shared.PeriodDaily: 1}
	repo.On("WebtoonIDs", mock.Anything).Return([]int64{1, 2}, nil)
	repo.On("SumWindows", mock.Anything, int64(1), rollupNow).Return(nil, errors.New("deadlock"))
	repo.On("SumWindows", mock.Anything, int64(2), rollupNow).Return(counters, nil)
	repo.On("SaveCounters", mock.Anything, int64(2), counters).Return(nil)

	res, err := r.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Failed)
	repo.AssertNotCalled(t, "SaveCounters", mock.Anything, int64(1), mock.Anything)
}

func TestRollup_ListFailure(t *testing.T) {
	repo := new(MockViewStatRepository)
	cache := &fakeCache{}
	r := newRollupForTest(repo, cache)

	repo.On("WebtoonIDs", mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := r.Run(context.Background())

	assert.Error(t, err)
	assert.Equal(t, int32(0), cache.calls.Load())
}

func TestRollup_CacheFailureIsNotFatal(t *testing.T) {
	repo := new(MockViewStatRepository)
	r := newRollupForTest(repo, &fakeCache{err: errors.New("redis down")})

	repo.On("WebtoonIDs", mock.Anything).Return([]int64{}, nil)

	_, err := r.Run(context.Background())

	assert.NoError(t, err)
}

func TestWorkerPool_RunsAllTasks(t *testing.T) {
	pool := NewWorkerPool(context.Background(), 3, nil)
	pool.Start()

	var done atomic.Int32
	for i := 0; i < 10; i++ {
		require.True(t, pool.Submit(func(ctx context.Context) error {
			done.Add(1)
			return nil
		}))
	}
	failed, err := pool.Wait()

	require.NoError(t, err)
	assert.Equal(t, int32(10), done.Load())
	assert.Equal(t, int64(0), failed)
}

func TestWorkerPool_FailedTasksCountedNotReturned(t *testing.T) {
	pool := NewWorkerPool(context.Background(), 2, nil)
	pool.Start()

	var done atomic.Int32
	for i := 0; i < 6; i++ {
		fail := i%2 == 0
		require.True(t, pool.Submit(func(ctx context.Context) error {
			done.Add(1)
			if fail {
				return errors.New("boom")
			}
			return nil
		}))
	}
	failed, err := pool.Wait()

	require.NoError(t, err)
	assert.Equal(t, int32(6), done.Load())
	assert.Equal(t, int64(3), failed)
}

func TestWorkerPool_ShutdownReportsCancellation(t *testing.T) {
	pool := NewWorkerPool(context.Background(), 1, nil)
	pool.Start()

	release := make(chan struct{})
	require.True(t, pool.Submit(func(ctx context.Context) error {
		<-release
		return nil
	}))

	done := make(chan int64)
	go func() { done <- pool.Shutdown() }()
	close(release)

	select {
	case failed := <-done:
		assert.Equal(t, int64(0), failed)
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown did not return")
	}

	_, err := pool.Wait()
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRollup_CancelledContextStopsEarly(t *testing.T) {
	repo := new(MockViewStatRepository)
	cache := &fakeCache{}
	r := newRollupForTest(repo, cache)

	ctx, cancel := context.WithCancel(context.Background())
	ids := make([]int64, 50)
	for i := range ids {
		ids[i] = int64(i + 1)
	}
	repo.On("WebtoonIDs", mock.Anything).Return(ids, nil).Run(func(mock.Arguments) { cancel() })
	repo.On("SumWindows", mock.Anything, mock.Anything, mock.Anything).Return(repository.WindowCounters{}, nil).Maybe()
	repo.On("SaveCounters", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	res, err := r.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 50, res.Webtoons)
	assert.Equal(t, int32(0), cache.calls.Load())
}

func TestWorkerPool_CancelledRejectsSubmit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewWorkerPool(ctx, 1, nil)
	pool.Start()
	cancel()

	// fill the buffer so Submit has to choose the done branch
	for i := 0; i < 10; i++ {
		if !pool.Submit(func(ctx context.Context) error { return nil }) {
			_, err := pool.Wait()
			assert.ErrorIs(t, err, context.Canceled)
			return
		}
	}
	t.Fatal("submit kept accepting after cancel")
}
