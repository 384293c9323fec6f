package handler

import (
	"net/http"

	"webtoonhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type AdvertisementHandler struct {
	svc service.AdvertisementService
}

func NewAdvertisementHandler(svc service.AdvertisementService) *AdvertisementHandler {
	return &AdvertisementHandler{svc: svc}
}

func (h *AdvertisementHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, requireAdmin gin.HandlerFunc) {
	rg.GET("/placement/:placement", h.Select)
	rg.POST("/:id/view", requireAuth, h.RecordView)
	rg.GET("/:id/view", requireAuth, requireAdmin, h.Views)
}

// Select always succeeds; data is null when nothing is servable
func (h *AdvertisementHandler) Select(c *gin.Context) {
	ad := h.svc.SelectForPlacement(c.Request.Context(), c.Param("placement"))
	if ad == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": ad})
}

func (h *AdvertisementHandler) RecordView(c *gin.Context) {
	adID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	memberID, ok := currentMember(c)
	if !ok {
		return
	}
	entry, err := h.svc.RecordView(c.Request.Context(), adID, memberID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *AdvertisementHandler) Views(c *gin.Context) {
	adID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	logs, err := h.svc.ListViews(c.Request.Context(), adID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
