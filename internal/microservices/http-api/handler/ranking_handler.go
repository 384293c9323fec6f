package handler

import (
	"net/http"
	"strconv"

	"webtoonhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type RankingHandler struct {
	svc service.RankingService
}

func NewRankingHandler(svc service.RankingService) *RankingHandler {
	return &RankingHandler{svc: svc}
}

func (h *RankingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:period", h.Get)
	rg.GET("/:period/:genre", h.Get)
}

// Get serves GET /ranking/:period[/:genre]?limit=
func (h *RankingHandler) Get(c *gin.Context) {
	limit := 0
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil {
			limit = parsed
		}
	}

	items, err := h.svc.Ranking(c.Request.Context(), c.Param("period"), c.Param("genre"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}
