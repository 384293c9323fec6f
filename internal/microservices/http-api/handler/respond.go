package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"webtoonhub/internal/microservices/http-api/dto"
	"webtoonhub/internal/microservices/http-api/middleware"
	"webtoonhub/internal/shared"

	"github.com/gin-gonic/gin"
)

var statusByKind = map[shared.ErrorKind]int{
	shared.KindValidation:   http.StatusBadRequest,
	shared.KindUnauthorized: http.StatusUnauthorized,
	shared.KindForbidden:    http.StatusForbidden,
	shared.KindNotFound:     http.StatusNotFound,
	shared.KindConflict:     http.StatusConflict,
	shared.KindInternal:     http.StatusInternalServerError,
}

// respondError maps a service error to its status code and writes {"error": msg}.
// Internal causes are logged and never reach the client.
func respondError(c *gin.Context, err error) {
	status, msg := classify(err)
	if status == http.StatusInternalServerError {
		slog.Default().ErrorContext(c.Request.Context(), "request_failed",
			"request_id", c.GetString(middleware.RequestIDKey),
			"route", c.FullPath(),
			"error", err,
		)
	}
	c.JSON(status, gin.H{"error": msg})
}

func classify(err error) (int, string) {
	kind := shared.KindOf(err)
	status := statusByKind[kind]
	if kind == shared.KindInternal {
		return status, "internal server error"
	}
	var appErr *shared.AppError
	if errors.As(err, &appErr) {
		return status, appErr.Message
	}
	return status, kind.String()
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// pageParams reads ?page and ?page_size; bad values fall back to 1 and 20.
func pageParams(c *gin.Context) (int, int) {
	page := 1
	pageSize := 20

	if p := c.Query("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if ps := c.Query("page_size"); ps != "" {
		if parsed, err := strconv.Atoi(ps); err == nil && parsed > 0 && parsed <= 100 {
			pageSize = parsed
		}
	}
	return page, pageSize
}

func respondPage(c *gin.Context, data any, page, pageSize int, total int64) {
	c.JSON(http.StatusOK, gin.H{
		"data":       data,
		"pagination": dto.NewPagination(page, pageSize, total),
	})
}

// currentMember reads the member id set by AuthMiddleware; routes using it are always behind auth.
func currentMember(c *gin.Context) (int64, bool) {
	id, ok := middleware.MemberID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return 0, false
	}
	return id, true
}
