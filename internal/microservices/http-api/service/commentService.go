package service

import (
	"context"
	"strings"

	"webtoonhub/internal/microservices/http-api/dto"
	"webtoonhub/internal/microservices/http-api/models"
	"webtoonhub/internal/microservices/http-api/repository"
	"webtoonhub/internal/shared"
)

const maxReasonLength = 100

type CommentService interface {
	CreateComment(ctx context.Context, episodeID, memberID int64, content string) (*models.Comment, error)
	CreateReply(ctx context.Context, parentID, memberID int64, content string) (*models.Comment, error)
	ListThreads(ctx context.Context, episodeID int64) ([]dto.ThreadResponse, error)
	Report(ctx context.Context, commentID, memberID int64, reason string, detail *string) (dto.ReportResult, error)
	Delete(ctx context.Context, commentID int64) error

	ListReports(ctx context.Context, page, pageSize int) ([]models.CommentReport, int64, error)
	DeleteReport(ctx context.Context, reportID int64) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	episodeRepo repository.EpisodeRepository
	adminID     int64 // system account stamped on every comment
}

func NewCommentService(commentRepo repository.CommentRepository, episodeRepo repository.EpisodeRepository, defaultAdminID int64) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		episodeRepo: episodeRepo,
		adminID:     defaultAdminID,
	}
}

// CreateComment creates a top-level comment on an episode
func (s *commentService) CreateComment(ctx context.Context, episodeID, memberID int64, content string) (*models.Comment, error) {
	content, err := cleanContent(content)
	if err != nil {
		return nil, err
	}

	ep, err := s.episodeRepo.GetByID(ctx, episodeID)
	if err != nil {
		return nil, lookupErr(err, "episode not found")
	}

	comment := &models.Comment{
		MemberID:  memberID,
		WebtoonID: ep.WebtoonID,
		EpisodeID: ep.ID,
		Content:   content,
		AdminID:   s.adminID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, shared.Internal("create comment", err)
	}
	return comment, nil
}

// CreateReply stores a reply on the parent's episode with an explicit parent id
func (s *commentService) CreateReply(ctx context.Context, parentID, memberID int64, content string) (*models.Comment, error) {
	content, err := cleanContent(content)
	if err != nil {
		return nil, err
	}

	parent, err := s.commentRepo.GetByID(ctx, parentID)
	if err != nil {
		return nil, lookupErr(err, "parent comment not found")
	}

	reply := &models.Comment{
		MemberID:  memberID,
		WebtoonID: parent.WebtoonID,
		EpisodeID: parent.EpisodeID,
		ParentID:  &parent.ID,
		Content:   content,
		AdminID:   s.adminID,
	}
	if err := s.commentRepo.Create(ctx, reply); err != nil {
		return nil, shared.Internal("create reply", err)
	}
	return reply, nil
}

func (s *commentService) ListThreads(ctx context.Context, episodeID int64) ([]dto.ThreadResponse, error) {
	if _, err := s.episodeRepo.GetByID(ctx, episodeID); err != nil {
		return nil, lookupErr(err, "episode not found")
	}
	comments, err := s.commentRepo.ListByEpisode(ctx, episodeID)
	if err != nil {
		return nil, shared.Internal("list comments", err)
	}
	return BuildThreads(comments), nil
}

// Report records or refreshes the member's report on a comment
func (s *commentService) Report(ctx context.Context, commentID, memberID int64, reason string, detail *string) (dto.ReportResult, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return "", shared.Validation("reason is required")
	}
	if len(reason) > maxReasonLength {
		return "", shared.Validation("reason is too long")
	}

	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		return "", lookupErr(err, "comment not found")
	}

	report := &models.CommentReport{
		CommentID: commentID,
		MemberID:  memberID,
		Reason:    reason,
		Detail:    detail,
	}
	created, err := s.commentRepo.SaveReport(ctx, report)
	if err != nil {
		return "", shared.Internal("save report", err)
	}
	if created {
		return dto.ReportCreated, nil
	}
	return dto.ReportUpdated, nil
}

// Delete permanently removes a comment
func (s *commentService) Delete(ctx context.Context, commentID int64) error {
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return lookupErr(err, "Not Found")
	}
	return nil
}

func (s *commentService) ListReports(ctx context.Context, page, pageSize int) ([]models.CommentReport, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	reports, total, err := s.commentRepo.ListReports(ctx, page, pageSize)
	if err != nil {
		return nil, 0, shared.Internal("list reports", err)
	}
	return reports, total, nil
}

func (s *commentService) DeleteReport(ctx context.Context, reportID int64) error {
	if err := s.commentRepo.DeleteReport(ctx, reportID); err != nil {
		return lookupErr(err, "Not Found")
	}
	return nil
}

// cleanContent trims and rejects empty text. A leading legacy reply marker is
// refused so new rows never carry one.
func cleanContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", shared.Validation("content is required")
	}
	if _, _, ok := models.LegacyParent(content); ok {
		return "", shared.Validation("content must not start with a reply marker")
	}
	return content, nil
}
