package models

import "time"

const (
	AdStatusActive = "ACTIVE"
	AdStatusPaused = "PAUSED"
	AdStatusEnded  = "ENDED"
)

type Advertisement struct {
	ID                   int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name                 string    `json:"name" gorm:"not null;size:200"`
	Placement            string    `json:"placement" gorm:"not null;index:idx_ad_placement_status;size:50"`
	Status               string    `json:"status" gorm:"not null;default:'ACTIVE';index:idx_ad_placement_status"`
	StartDate            time.Time `json:"start_date" gorm:"not null"`
	EndDate              time.Time `json:"end_date" gorm:"not null"`
	TotalExposureLimit   *int64    `json:"total_exposure_limit,omitempty"`
	CurrentExposureCount int64     `json:"current_exposure_count" gorm:"not null;default:0"`
	ImageURL             string    `json:"image_url" gorm:"not null"`
	TargetURL            string    `json:"target_url" gorm:"not null"`
	AdminID              int64     `json:"admin_id" gorm:"not null"`
	CreatedAt            time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt            time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Advertisement) TableName() string {
	return "advertisements"
}

// EligibleAt reports whether the ad may be served at now. Placement is
// matched by the caller.
func (a *Advertisement) EligibleAt(now time.Time) bool {
	if a.Status != AdStatusActive {
		return false
	}
	if now.Before(a.StartDate) || now.After(a.EndDate) {
		return false
	}
	if a.TotalExposureLimit != nil && a.CurrentExposureCount >= *a.TotalExposureLimit {
		return false
	}
	return true
}

type AdViewLog struct {
	ID       int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	MemberID int64     `json:"member_id" gorm:"not null;index"`
	AdID     int64     `json:"ad_id" gorm:"not null;index"`
	ViewedAt time.Time `json:"viewed_at" gorm:"not null"`

	Advertisement *Advertisement `json:"-" gorm:"foreignKey:AdID;constraint:OnDelete:CASCADE;"`
}

func (AdViewLog) TableName() string {
	return "ad_view_logs"
}
