package models

import "time"

type Webtoon struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name" gorm:"not null;size:200"`
	Genre        string    `json:"genre" gorm:"not null;index;size:50"`
	Description  *string   `json:"description,omitempty" gorm:"type:text"`
	Thumbnail    *string   `json:"thumbnail,omitempty"`
	Views        int64     `json:"views" gorm:"not null;default:0"`
	Recommend    int64     `json:"recommend" gorm:"not null;default:0"`
	DailyViews   *int64    `json:"daily_views,omitempty"`
	WeeklyViews  *int64    `json:"weekly_views,omitempty"`
	MonthlyViews *int64    `json:"monthly_views,omitempty"`
	YearlyViews  *int64    `json:"yearly_views,omitempty"`
	Discontinued bool      `json:"discontinued" gorm:"not null;default:false"`
	ArtistID     int64     `json:"artist_id" gorm:"not null;index"`
	AdminID      int64     `json:"admin_id" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// association
	Artist *Artist `json:"artist,omitempty" gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE;"`
}

func (Webtoon) TableName() string {
	return "webtoons"
}

// WebtoonViewStat is one day of views for one webtoon. The rollup job sums
// these into the windowed counters on Webtoon.
type WebtoonViewStat struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	WebtoonID int64     `json:"webtoon_id" gorm:"not null;uniqueIndex:idx_webtoon_stat_date"`
	StatDate  time.Time `json:"stat_date" gorm:"type:date;not null;uniqueIndex:idx_webtoon_stat_date"`
	Views     int64     `json:"views" gorm:"not null;default:0"`

	Webtoon *Webtoon `json:"-" gorm:"foreignKey:WebtoonID;constraint:OnDelete:CASCADE;"`
}

func (WebtoonViewStat) TableName() string {
	return "webtoon_view_stats"
}
