package models

import "time"

type Episode struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	WebtoonID  int64     `json:"webtoon_id" gorm:"not null;index"`
	Title      string    `json:"title" gorm:"not null;size:200"`
	Thumbnail  *string   `json:"thumbnail,omitempty"`
	ContentURL string    `json:"content_url" gorm:"not null"`
	UploadDate time.Time `json:"upload_date" gorm:"not null"`
	AdminID    int64     `json:"admin_id" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Webtoon *Webtoon `json:"-" gorm:"foreignKey:WebtoonID;constraint:OnDelete:CASCADE;"`
}

func (Episode) TableName() string {
	return "episodes"
}
