package service

import (
	"errors"

	"webtoonhub/internal/shared"

	"gorm.io/gorm"
)

// lookupErr turns a repository lookup failure into NotFound(msg) on a miss
// and Internal otherwise.
func lookupErr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.NotFound(msg)
	}
	var appErr *shared.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return shared.Internal(msg, err)
}

// normalizePage clamps pagination input the same way for every list endpoint.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
