package handler

import (
	"net/http"

	"webtoonhub/internal/microservices/http-api/dto"
	"webtoonhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	svc service.SubscriptionService
}

func NewSubscriptionHandler(svc service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc}
}

// RegisterRoutes expects rg to already sit behind AuthMiddleware
func (h *SubscriptionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Subscribe)
	rg.GET("", h.List)
	rg.DELETE("/:webtoonId", h.Unsubscribe)
	rg.PATCH("/:webtoonId/alarm", h.SetAlarm)
}

func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}
	var req dto.SubscribeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.svc.Subscribe(c.Request.Context(), memberID, req.WebtoonID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *SubscriptionHandler) List(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}
	subs, err := h.svc.List(c.Request.Context(), memberID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": subs})
}

func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}
	webtoonID, ok := parseIDParam(c, "webtoonId")
	if !ok {
		return
	}
	if err := h.svc.Unsubscribe(c.Request.Context(), memberID, webtoonID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *SubscriptionHandler) SetAlarm(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}
	webtoonID, ok := parseIDParam(c, "webtoonId")
	if !ok {
		return
	}
	var req dto.AlarmDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sub, err := h.svc.SetAlarm(c.Request.Context(), memberID, webtoonID, *req.AlarmOn)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "alarmOn": sub.AlarmOn})
}
