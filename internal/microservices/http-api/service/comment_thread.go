package service

import (
	"sort"

	"webtoonhub/internal/microservices/http-api/dto"
	"webtoonhub/internal/microservices/http-api/models"
)

// BuildThreads groups a flat comment list into top-level threads. Each reply
// hangs off its top-level ancestor, so nested replies come out flattened.
// A comment whose parent is not in the list, or that sits on a parent cycle,
// is promoted to the top level and marked orphaned; for a cycle the lowest id
// becomes the top.
func BuildThreads(comments []models.Comment) []dto.ThreadResponse {
	sorted := make([]*models.Comment, 0, len(comments))
	byID := make(map[int64]*models.Comment, len(comments))
	for i := range comments {
		sorted = append(sorted, &comments[i])
		byID[comments[i].ID] = &comments[i]
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	roots := make(map[int64]int64, len(comments))
	orphaned := make(map[int64]bool)
	for _, c := range sorted {
		resolveRoot(c, byID, roots, orphaned)
	}

	threads := make([]dto.ThreadResponse, 0)
	index := make(map[int64]int)
	for _, c := range sorted {
		if roots[c.ID] != c.ID {
			continue
		}
		index[c.ID] = len(threads)
		threads = append(threads, dto.ThreadResponse{
			CommentResponse: dto.FromModelToCommentResponse(c),
			Orphaned:        orphaned[c.ID],
			Replies:         []dto.CommentResponse{},
		})
	}
	for _, c := range sorted {
		root := roots[c.ID]
		if root == c.ID {
			continue
		}
		t := &threads[index[root]]
		t.Replies = append(t.Replies, dto.FromModelToCommentResponse(c))
	}
	return threads
}

// resolveRoot walks parent links from c and records the top-level ancestor
// for every comment on the walked path.
func resolveRoot(c *models.Comment, byID map[int64]*models.Comment, roots map[int64]int64, orphaned map[int64]bool) {
	var path []int64
	onPath := make(map[int64]int)
	var root int64

	cur := c
	for {
		if r, done := roots[cur.ID]; done {
			root = r
			break
		}
		onPath[cur.ID] = len(path)
		path = append(path, cur.ID)

		parentID, isReply := cur.ResolvedParent()
		if !isReply {
			root = cur.ID
			break
		}
		if idx, seen := onPath[parentID]; seen {
			root = minID(path[idx:])
			orphaned[root] = true
			break
		}
		parent, ok := byID[parentID]
		if !ok {
			root = cur.ID
			orphaned[root] = true
			break
		}
		cur = parent
	}

	for _, id := range path {
		roots[id] = root
	}
}

func minID(ids []int64) int64 {
	m := ids[0]
	for _, id := range ids[1:] {
		if id < m {
			m = id
		}
	}
	return m
}
