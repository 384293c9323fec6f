package service

import (
	"testing"
	"time"

	"webtoonhub/internal/microservices/http-api/dto"
	"webtoonhub/internal/microservices/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var threadBase = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func threadComment(id int64, minute int, parent *int64, content string) models.Comment {
	return models.Comment{
		ID:        id,
		ParentID:  parent,
		Content:   content,
		CreatedAt: threadBase.Add(time.Duration(minute) * time.Minute),
	}
}

func replyIDs(t dto.ThreadResponse) []int64 {
	ids := make([]int64, 0, len(t.Replies))
	for _, r := range t.Replies {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestBuildThreads_GroupsRepliesInOrder(t *testing.T) {
	comments := []models.Comment{
		threadComment(3, 3, int64Ptr(1), "second reply"),
		threadComment(1, 0, nil, "top"),
		threadComment(2, 1, int64Ptr(1), "first reply"),
		threadComment(4, 2, nil, "another top"),
	}

	threads := BuildThreads(comments)

	require.Len(t, threads, 2)
	assert.Equal(t, int64(1), threads[0].ID)
	assert.Equal(t, []int64{2, 3}, replyIDs(threads[0]))
	assert.Equal(t, int64(4), threads[1].ID)
	assert.Empty(t, threads[1].Replies)
	assert.NotNil(t, threads[1].Replies)
}

func TestBuildThreads_LegacyMarker(t *testing.T) {
	comments := []models.Comment{
		threadComment(10, 0, nil, "hello"),
		threadComment(11, 1, nil, "::p[10] nice one"),
	}

	threads := BuildThreads(comments)

	require.Len(t, threads, 1)
	require.Len(t, threads[0].Replies, 1)
	assert.Equal(t, "nice one", threads[0].Replies[0].Content)
}

func TestBuildThreads_NestedRepliesFlatten(t *testing.T) {
	comments := []models.Comment{
		threadComment(1, 0, nil, "root"),
		threadComment(2, 1, int64Ptr(1), "child"),
		threadComment(3, 2, int64Ptr(2), "grandchild"),
	}

	threads := BuildThreads(comments)

	require.Len(t, threads, 1)
	assert.Equal(t, []int64{2, 3}, replyIDs(threads[0]))
}

func TestBuildThreads_OrphanPromoted(t *testing.T) {
	comments := []models.Comment{
		threadComment(1, 0, nil, "root"),
		threadComment(5, 1, int64Ptr(99), "parent was deleted"),
		threadComment(6, 2, int64Ptr(5), "reply to orphan"),
	}

	threads := BuildThreads(comments)

	require.Len(t, threads, 2)
	assert.False(t, threads[0].Orphaned)
	assert.Equal(t, int64(5), threads[1].ID)
	assert.True(t, threads[1].Orphaned)
	assert.Equal(t, []int64{6}, replyIDs(threads[1]))
}

func TestBuildThreads_CycleTerminates(t *testing.T) {
	comments := []models.Comment{
		threadComment(8, 0, int64Ptr(7), "a"),
		threadComment(7, 1, int64Ptr(8), "b"),
	}

	threads := BuildThreads(comments)

	require.Len(t, threads, 1)
	assert.Equal(t, int64(7), threads[0].ID)
	assert.True(t, threads[0].Orphaned)
	assert.Equal(t, []int64{8}, replyIDs(threads[0]))
}

func TestBuildThreads_Empty(t *testing.T) {
	threads := BuildThreads(nil)
	assert.NotNil(t, threads)
	assert.Empty(t, threads)
}
