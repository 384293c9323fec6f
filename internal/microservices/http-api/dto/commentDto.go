package dto

import (
	"time"

	"webtoonhub/internal/microservices/http-api/models"
)

// CreateCommentDTO for a top-level comment or a reply
type CreateCommentDTO struct {
	Content string `json:"content" binding:"required,min=1,max=5000"`
}

// ReportCommentDTO for reporting a comment; reason is checked by the service
type ReportCommentDTO struct {
	Reason string  `json:"reason"`
	Detail *string `json:"detail"`
}

// CommentResponse is one comment as shown in a thread
type CommentResponse struct {
	ID        int64     `json:"id"`
	MemberID  int64     `json:"member_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Likes     int64     `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

// ThreadResponse is a top-level comment with its replies
type ThreadResponse struct {
	CommentResponse
	Orphaned bool              `json:"orphaned,omitempty"`
	Replies  []CommentResponse `json:"replies"`
}

// FromModelToCommentResponse converts a Comment model, stripping any legacy reply marker
func FromModelToCommentResponse(comment *models.Comment) CommentResponse {
	username := ""
	if comment.Member != nil {
		username = comment.Member.Username
	}
	return CommentResponse{
		ID:        comment.ID,
		MemberID:  comment.MemberID,
		Username:  username,
		Content:   comment.DisplayText(),
		Likes:     comment.Likes,
		CreatedAt: comment.CreatedAt,
	}
}

// ReportResult is the outcome of a report upsert
type ReportResult string

const (
	ReportCreated ReportResult = "created"
	ReportUpdated ReportResult = "updated"
)
