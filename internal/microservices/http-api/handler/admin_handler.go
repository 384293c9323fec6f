package handler

import (
	"net/http"

	"webtoonhub/internal/microservices/http-api/dto"
	"webtoonhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves /admin; every route sits behind AuthMiddleware and RequireAdmin
type AdminHandler struct {
	members  service.MemberService
	webtoons service.WebtoonService
	ads      service.AdvertisementService
	comments service.CommentService
}

func NewAdminHandler(
	members service.MemberService,
	webtoons service.WebtoonService,
	ads service.AdvertisementService,
	comments service.CommentService,
) *AdminHandler {
	return &AdminHandler{members: members, webtoons: webtoons, ads: ads, comments: comments}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	members := rg.Group("/members")
	members.GET("", h.ListMembers)
	members.GET("/:id", h.GetMember)
	members.PUT("/:id", h.UpdateMember)
	members.DELETE("/:id", h.DeleteMember)

	artists := rg.Group("/artists")
	artists.GET("", h.ListArtists)
	artists.POST("", h.CreateArtist)
	artists.GET("/:id", h.GetArtist)
	artists.PUT("/:id", h.UpdateArtist)
	artists.DELETE("/:id", h.DeleteArtist)

	webtoons := rg.Group("/webtoons")
	webtoons.GET("", h.ListWebtoons)
	webtoons.POST("", h.CreateWebtoon)
	webtoons.GET("/:id", h.GetWebtoon)
	webtoons.PUT("/:id", h.UpdateWebtoon)
	webtoons.DELETE("/:id", h.DeleteWebtoon)

	episodes := rg.Group("/episodes")
	episodes.GET("", h.ListEpisodes)
	episodes.POST("", h.CreateEpisode)
	episodes.GET("/:id", h.GetEpisode)
	episodes.PUT("/:id", h.UpdateEpisode)
	episodes.DELETE("/:id", h.DeleteEpisode)

	ads := rg.Group("/advertisements")
	ads.GET("", h.ListAds)
	ads.POST("", h.CreateAd)
	ads.GET("/:id", h.GetAd)
	ads.PUT("/:id", h.UpdateAd)
	ads.DELETE("/:id", h.DeleteAd)

	reports := rg.Group("/comment-reports")
	reports.GET("", h.ListReports)
	reports.DELETE("/:id", h.DeleteReport)
}

// Members

func (h *AdminHandler) ListMembers(c *gin.Context) {
	page, pageSize := pageParams(c)
	list, total, err := h.members.ListMembers(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, list, page, pageSize, total)
}

func (h *AdminHandler) GetMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	m, err := h.members.GetMember(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *AdminHandler) UpdateMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateMemberDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := h.members.UpdateMember(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *AdminHandler) DeleteMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.members.DeleteMember(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Artists

func (h *AdminHandler) ListArtists(c *gin.Context) {
	page, pageSize := pageParams(c)
	list, total, err := h.members.ListArtists(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, list, page, pageSize, total)
}

func (h *AdminHandler) GetArtist(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	a, err := h.members.GetArtist(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AdminHandler) CreateArtist(c *gin.Context) {
	var req dto.CreateArtistDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := h.members.CreateArtist(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *AdminHandler) UpdateArtist(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateArtistDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := h.members.UpdateArtist(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AdminHandler) DeleteArtist(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.members.DeleteArtist(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Webtoons

func (h *AdminHandler) ListWebtoons(c *gin.Context) {
	page, pageSize := pageParams(c)
	list, total, err := h.webtoons.List(c.Request.Context(), c.Query("genre"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, list, page, pageSize, total)
}

func (h *AdminHandler) GetWebtoon(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	w, err := h.webtoons.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *AdminHandler) CreateWebtoon(c *gin.Context) {
	var req dto.CreateWebtoonDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	w, err := h.webtoons.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

func (h *AdminHandler) UpdateWebtoon(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateWebtoonDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	w, err := h.webtoons.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *AdminHandler) DeleteWebtoon(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.webtoons.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Episodes

func (h *AdminHandler) ListEpisodes(c *gin.Context) {
	page, pageSize := pageParams(c)
	list, total, err := h.webtoons.ListAllEpisodes(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, list, page, pageSize, total)
}

func (h *AdminHandler) GetEpisode(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	detail, err := h.webtoons.GetEpisode(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *AdminHandler) CreateEpisode(c *gin.Context) {
	var req dto.CreateEpisodeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ep, err := h.webtoons.CreateEpisode(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ep)
}

func (h *AdminHandler) UpdateEpisode(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateEpisodeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ep, err := h.webtoons.UpdateEpisode(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ep)
}

func (h *AdminHandler) DeleteEpisode(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.webtoons.DeleteEpisode(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Advertisements

func (h *AdminHandler) ListAds(c *gin.Context) {
	page, pageSize := pageParams(c)
	list, total, err := h.ads.List(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, list, page, pageSize, total)
}

func (h *AdminHandler) GetAd(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ad, err := h.ads.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ad)
}

func (h *AdminHandler) CreateAd(c *gin.Context) {
	var req dto.CreateAdvertisementDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ad, err := h.ads.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ad)
}

func (h *AdminHandler) UpdateAd(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateAdvertisementDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ad, err := h.ads.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ad)
}

func (h *AdminHandler) DeleteAd(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ads.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Comment reports

func (h *AdminHandler) ListReports(c *gin.Context) {
	page, pageSize := pageParams(c)
	list, total, err := h.comments.ListReports(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, list, page, pageSize, total)
}

func (h *AdminHandler) DeleteReport(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.comments.DeleteReport(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
