package dto

import (
	"time"

	"webtoonhub/internal/microservices/http-api/models"
)

// CreateAdvertisementDTO for admin ad creation
type CreateAdvertisementDTO struct {
	Name               string    `json:"name" binding:"required,max=200"`
	Placement          string    `json:"placement" binding:"required,max=50"`
	Status             string    `json:"status" binding:"omitempty,oneof=ACTIVE PAUSED ENDED"`
	StartDate          time.Time `json:"start_date" binding:"required"`
	EndDate            time.Time `json:"end_date" binding:"required"`
	TotalExposureLimit *int64    `json:"total_exposure_limit" binding:"omitempty,gt=0"`
	ImageURL           string    `json:"image_url" binding:"required"`
	TargetURL          string    `json:"target_url" binding:"required"`
}

// UpdateAdvertisementDTO: only provided fields are applied
type UpdateAdvertisementDTO struct {
	Name               *string    `json:"name" binding:"omitempty,max=200"`
	Placement          *string    `json:"placement" binding:"omitempty,max=50"`
	Status             *string    `json:"status" binding:"omitempty,oneof=ACTIVE PAUSED ENDED"`
	StartDate          *time.Time `json:"start_date"`
	EndDate            *time.Time `json:"end_date"`
	TotalExposureLimit *int64     `json:"total_exposure_limit" binding:"omitempty,gt=0"`
	ImageURL           *string    `json:"image_url"`
	TargetURL          *string    `json:"target_url"`
}

func (in CreateAdvertisementDTO) ToModel() models.Advertisement {
	status := in.Status
	if status == "" {
		status = models.AdStatusActive
	}
	return models.Advertisement{
		Name:               in.Name,
		Placement:          in.Placement,
		Status:             status,
		StartDate:          in.StartDate,
		EndDate:            in.EndDate,
		TotalExposureLimit: in.TotalExposureLimit,
		ImageURL:           in.ImageURL,
		TargetURL:          in.TargetURL,
	}
}

func (in UpdateAdvertisementDTO) ApplyTo(ad *models.Advertisement) {
	if in.Name != nil {
		ad.Name = *in.Name
	}
	if in.Placement != nil {
		ad.Placement = *in.Placement
	}
	if in.Status != nil {
		ad.Status = *in.Status
	}
	if in.StartDate != nil {
		ad.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		ad.EndDate = *in.EndDate
	}
	if in.TotalExposureLimit != nil {
		ad.TotalExposureLimit = in.TotalExposureLimit
	}
	if in.ImageURL != nil {
		ad.ImageURL = *in.ImageURL
	}
	if in.TargetURL != nil {
		ad.TargetURL = *in.TargetURL
	}
}
