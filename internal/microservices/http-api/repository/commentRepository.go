package repository

import (
	"context"
	"errors"
	"fmt"

	"webtoonhub/internal/microservices/http-api/models"
	"webtoonhub/internal/shared"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID int64) (*models.Comment, error)
	ListByEpisode(ctx context.Context, episodeID int64) ([]models.Comment, error)
	Delete(ctx context.Context, commentID int64) error

	SaveReport(ctx context.Context, report *models.CommentReport) (created bool, err error)
	ListReports(ctx context.Context, page, pageSize int) ([]models.CommentReport, int64, error)
	DeleteReport(ctx context.Context, reportID int64) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create a new comment
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Omit("Member", "Webtoon", "Episode", "Parent").Create(comment).Error; err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

// GetByID retrieves a comment by its ID
func (r *commentRepository) GetByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).Where("id = ?", commentID).
		Preload("Member").
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByEpisode returns every comment of an episode flat, oldest first; threads are built by the service.
func (r *commentRepository) ListByEpisode(ctx context.Context, episodeID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).Where("episode_id = ?", episodeID).
		Preload("Member").
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// Delete permanently removes a comment; replies cascade through parent_id.
func (r *commentRepository) Delete(ctx context.Context, commentID int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Comment{}, commentID)
	if result.Error != nil {
		return fmt.Errorf("delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NotFound("Not Found")
	}
	return nil
}

// SaveReport keeps one report per (comment, member): an existing row gets the
// new reason/detail, otherwise a row is inserted. Two concurrent first reports
// collide on the unique index; the loser retries as an update.
func (r *commentRepository) SaveReport(ctx context.Context, report *models.CommentReport) (bool, error) {
	created, err := r.saveReportOnce(ctx, report)
	if err != nil && shared.IsUniqueViolation(err) {
		return r.saveReportOnce(ctx, report)
	}
	return created, err
}

func (r *commentRepository) saveReportOnce(ctx context.Context, report *models.CommentReport) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.CommentReport
		err := tx.Where("comment_id = ? AND member_id = ?", report.CommentID, report.MemberID).
			First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
			return tx.Omit("Comment").Create(report).Error
		case err != nil:
			return err
		}

		existing.Reason = report.Reason
		existing.Detail = report.Detail
		if err := tx.Omit("Comment").Save(&existing).Error; err != nil {
			return err
		}
		*report = existing
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("save comment report: %w", err)
	}
	return created, nil
}

func (r *commentRepository) ListReports(ctx context.Context, page, pageSize int) ([]models.CommentReport, int64, error) {
	var reports []models.CommentReport
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.CommentReport{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Scopes(paginate(page, pageSize)).
		Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

func (r *commentRepository) DeleteReport(ctx context.Context, reportID int64) error {
	result := r.db.WithContext(ctx).Delete(&models.CommentReport{}, reportID)
	if result.Error != nil {
		return fmt.Errorf("delete comment report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NotFound("Not Found")
	}
	return nil
}
