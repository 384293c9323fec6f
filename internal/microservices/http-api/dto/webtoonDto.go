package dto

import (
	"time"

	"webtoonhub/internal/microservices/http-api/models"
)

// CreateWebtoonDTO for admin webtoon creation
type CreateWebtoonDTO struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Genre       string  `json:"genre" binding:"required,max=50"`
	Description *string `json:"description"`
	Thumbnail   *string `json:"thumbnail"`
	ArtistID    int64   `json:"artist_id" binding:"required,gt=0"`
}

// UpdateWebtoonDTO: only provided fields are applied
type UpdateWebtoonDTO struct {
	Name         *string `json:"name" binding:"omitempty,max=200"`
	Genre        *string `json:"genre" binding:"omitempty,max=50"`
	Description  *string `json:"description"`
	Thumbnail    *string `json:"thumbnail"`
	ArtistID     *int64  `json:"artist_id" binding:"omitempty,gt=0"`
	Discontinued *bool   `json:"discontinued"`
}

func (in CreateWebtoonDTO) ToModel() models.Webtoon {
	return models.Webtoon{
		Name:        in.Name,
		Genre:       in.Genre,
		Description: in.Description,
		Thumbnail:   in.Thumbnail,
		ArtistID:    in.ArtistID,
	}
}

func (in UpdateWebtoonDTO) ApplyTo(w *models.Webtoon) {
	if in.Name != nil {
		w.Name = *in.Name
	}
	if in.Genre != nil {
		w.Genre = *in.Genre
	}
	if in.Description != nil {
		w.Description = in.Description
	}
	if in.Thumbnail != nil {
		w.Thumbnail = in.Thumbnail
	}
	if in.ArtistID != nil {
		w.ArtistID = *in.ArtistID
	}
	if in.Discontinued != nil {
		w.Discontinued = *in.Discontinued
	}
}

// CreateEpisodeDTO for admin episode creation
type CreateEpisodeDTO struct {
	WebtoonID  int64      `json:"webtoon_id" binding:"required,gt=0"`
	Title      string     `json:"title" binding:"required,max=200"`
	Thumbnail  *string    `json:"thumbnail"`
	ContentURL string     `json:"content_url" binding:"required"`
	UploadDate *time.Time `json:"upload_date"`
}

// UpdateEpisodeDTO: only provided fields are applied
type UpdateEpisodeDTO struct {
	Title      *string    `json:"title" binding:"omitempty,max=200"`
	Thumbnail  *string    `json:"thumbnail"`
	ContentURL *string    `json:"content_url"`
	UploadDate *time.Time `json:"upload_date"`
}

func (in CreateEpisodeDTO) ToModel(now time.Time) models.Episode {
	upload := now
	if in.UploadDate != nil {
		upload = *in.UploadDate
	}
	return models.Episode{
		WebtoonID:  in.WebtoonID,
		Title:      in.Title,
		Thumbnail:  in.Thumbnail,
		ContentURL: in.ContentURL,
		UploadDate: upload,
	}
}

func (in UpdateEpisodeDTO) ApplyTo(ep *models.Episode) {
	if in.Title != nil {
		ep.Title = *in.Title
	}
	if in.Thumbnail != nil {
		ep.Thumbnail = in.Thumbnail
	}
	if in.ContentURL != nil {
		ep.ContentURL = *in.ContentURL
	}
	if in.UploadDate != nil {
		ep.UploadDate = *in.UploadDate
	}
}

// EpisodeDetailResponse carries navigation to neighbouring episodes
type EpisodeDetailResponse struct {
	models.Episode
	PrevEpisodeID *int64 `json:"prev_episode_id"`
	NextEpisodeID *int64 `json:"next_episode_id"`
}

// CreateArtistDTO / UpdateArtistDTO for admin artist CRUD
type CreateArtistDTO struct {
	Name         string  `json:"name" binding:"required,max=100"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Introduction *string `json:"introduction"`
	PortfolioURL *string `json:"portfolio_url"`
}

type UpdateArtistDTO struct {
	Name         *string `json:"name" binding:"omitempty,max=100"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Introduction *string `json:"introduction"`
	PortfolioURL *string `json:"portfolio_url"`
}

func (in CreateArtistDTO) ToModel() models.Artist {
	return models.Artist{
		Name:         in.Name,
		Email:        in.Email,
		Introduction: in.Introduction,
		PortfolioURL: in.PortfolioURL,
	}
}

func (in UpdateArtistDTO) ApplyTo(a *models.Artist) {
	if in.Name != nil {
		a.Name = *in.Name
	}
	if in.Email != nil {
		a.Email = in.Email
	}
	if in.Introduction != nil {
		a.Introduction = in.Introduction
	}
	if in.PortfolioURL != nil {
		a.PortfolioURL = in.PortfolioURL
	}
}

// UpdateMemberDTO for admin member edits
type UpdateMemberDTO struct {
	Name   *string `json:"name" binding:"omitempty,max=100"`
	Email  *string `json:"email" binding:"omitempty,email"`
	Role   *string `json:"role" binding:"omitempty,oneof=user admin"`
	Status *string `json:"status" binding:"omitempty,oneof=ACTIVE SUSPENDED"`
}

func (in UpdateMemberDTO) ApplyTo(m *models.Member) {
	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.Email != nil {
		m.Email = *in.Email
	}
	if in.Role != nil {
		m.Role = *in.Role
	}
	if in.Status != nil {
		m.Status = *in.Status
	}
}
