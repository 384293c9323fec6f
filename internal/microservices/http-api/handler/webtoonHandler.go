package handler

import (
	"net/http"

	"webtoonhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// WebtoonHandler serves the public browse surface for webtoons and episodes
type WebtoonHandler struct {
	svc service.WebtoonService
}

func NewWebtoonHandler(svc service.WebtoonService) *WebtoonHandler {
	return &WebtoonHandler{svc: svc}
}

func (h *WebtoonHandler) RegisterRoutes(webtoons, episodes *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	webtoons.GET("", h.List)
	webtoons.GET("/:id", h.Get)
	webtoons.GET("/:id/episodes", h.Episodes)
	webtoons.POST("/:id/recommend", requireAuth, h.Recommend)

	episodes.GET("/:id", h.Episode)
	episodes.POST("/:id/view", requireAuth, h.RecordView)
}

func (h *WebtoonHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	list, total, err := h.svc.List(c.Request.Context(), c.Query("genre"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, list, page, pageSize, total)
}

func (h *WebtoonHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	w, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WebtoonHandler) Episodes(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	list, err := h.svc.ListEpisodes(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

func (h *WebtoonHandler) Recommend(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Recommend(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *WebtoonHandler) Episode(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	detail, err := h.svc.GetEpisode(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *WebtoonHandler) RecordView(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.RecordEpisodeView(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
