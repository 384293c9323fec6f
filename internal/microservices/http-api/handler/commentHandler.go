package handler

import (
	"net/http"

	"webtoonhub/internal/microservices/http-api/dto"
	"webtoonhub/internal/microservices/http-api/service"
	"webtoonhub/internal/shared"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	svc service.CommentService
}

func NewCommentHandler(svc service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// RegisterRoutes wires episode comment routes and the /comment group
func (h *CommentHandler) RegisterRoutes(episodes, comments *gin.RouterGroup, requireAuth, requireAdmin gin.HandlerFunc) {
	episodes.GET("/:id/comments", h.List)
	episodes.POST("/:id/comments", requireAuth, h.Create)

	comments.POST("/reply/:parentCommentId", requireAuth, h.Reply)
	comments.POST("/report/:commentId", requireAuth, h.Report)
	comments.DELETE("/:id", requireAuth, requireAdmin, h.Delete)
}

func (h *CommentHandler) List(c *gin.Context) {
	episodeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	threads, err := h.svc.ListThreads(c.Request.Context(), episodeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": threads})
}

func (h *CommentHandler) Create(c *gin.Context) {
	episodeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	memberID, ok := currentMember(c)
	if !ok {
		return
	}

	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.svc.CreateComment(c.Request.Context(), episodeID, memberID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": comment.ID})
}

func (h *CommentHandler) Reply(c *gin.Context) {
	parentID, ok := parseIDParam(c, "parentCommentId")
	if !ok {
		return
	}
	memberID, ok := currentMember(c)
	if !ok {
		return
	}

	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.svc.CreateReply(c.Request.Context(), parentID, memberID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": reply.ID})
}

func (h *CommentHandler) Report(c *gin.Context) {
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}
	memberID, ok := currentMember(c)
	if !ok {
		return
	}

	var req dto.ReportCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.svc.Report(c.Request.Context(), commentID, memberID, req.Reason, req.Detail)
	if err != nil {
		respondError(c, err)
		return
	}
	// body carries exactly one of "created" or "updated"
	c.JSON(http.StatusCreated, gin.H{"success": true, string(result): true})
}

// Delete answers 404 with {"message": "Not Found"} for a missing comment
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if shared.KindOf(err) == shared.KindNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
			return
		}
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
