package repository

import "gorm.io/gorm"

// paginate applies LIMIT/OFFSET for a 1-based page.
func paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		if pageSize < 1 {
			pageSize = 20
		}
		return db.Limit(pageSize).Offset((page - 1) * pageSize)
	}
}
