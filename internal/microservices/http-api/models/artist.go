package models

import "time"

type Artist struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name" gorm:"not null;size:100"`
	Email        *string   `json:"email,omitempty"`
	Introduction *string   `json:"introduction,omitempty" gorm:"type:text"`
	PortfolioURL *string   `json:"portfolio_url,omitempty"`
	AdminID      int64     `json:"admin_id" gorm:"not null;index"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Artist) TableName() string {
	return "artists"
}
